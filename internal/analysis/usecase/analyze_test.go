package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"procurement-srv/internal/analysis"
	"procurement-srv/internal/model"
	"procurement-srv/internal/vendors"
	"procurement-srv/pkg/log"
	"procurement-srv/pkg/openai"
	pkgRedis "procurement-srv/pkg/redis"
)

type fakeVendorUC struct {
	vendors  []model.VendorRecord
	snapErr  error
	analytic model.AnalyticsSummary
}

func (f *fakeVendorUC) Refresh(ctx context.Context) (vendor.RefreshOutput, error) {
	return vendor.RefreshOutput{}, nil
}
func (f *fakeVendorUC) List(ctx context.Context, input vendor.ListInput) (vendor.ListOutput, error) {
	return vendor.ListOutput{}, nil
}
func (f *fakeVendorUC) Analytics(ctx context.Context) (model.AnalyticsSummary, error) {
	return f.analytic, nil
}
func (f *fakeVendorUC) Snapshot(ctx context.Context) ([]model.VendorRecord, error) {
	if f.snapErr != nil {
		return nil, f.snapErr
	}
	return f.vendors, nil
}

type fakeAI struct {
	content string
	err     error
	gotUser string
	gotSys  string
	gotTemp float64
	gotMax  int
	calls   int
}

func (f *fakeAI) Complete(ctx context.Context, params openai.CompletionParams) (string, error) {
	f.calls++
	f.gotSys = params.SystemPrompt
	f.gotUser = params.UserPrompt
	f.gotTemp = params.Temperature
	f.gotMax = params.MaxTokens
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

// fakeRedis is an in-memory IRedis. A missing key reads as goredis.Nil,
// matching the real client.
type fakeRedis struct {
	store  map[string]string
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: map[string]string{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.store[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.store[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
	}
	return nil
}

func (f *fakeRedis) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.store[key]
	return ok, nil
}

func (f *fakeRedis) TTL(ctx context.Context, key string) (time.Duration, error) { return 0, nil }
func (f *fakeRedis) Close() error                                              { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error                            { return nil }
func (f *fakeRedis) GetClient() *goredis.Client                                { return nil }

func newTestUseCase(vendorUC vendor.UseCase, ai openai.IOpenAI) analysis.UseCase {
	return newTestUseCaseWithCache(vendorUC, ai, nil)
}

func newTestUseCaseWithCache(vendorUC vendor.UseCase, ai openai.IOpenAI, cache pkgRedis.IRedis) analysis.UseCase {
	return New(vendorUC, ai, cache, Config{}, log.Init(log.ZapConfig{Level: "error"}))
}

func sampleVendors(n int) []model.VendorRecord {
	out := make([]model.VendorRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.VendorRecord{
			VendorName:       fmt.Sprintf("Vendor %03d", i),
			Geography:        "Hanoi",
			ComplianceStatus: model.ComplianceCompliant,
		})
	}
	return out
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeVendorUC{vendors: sampleVendors(1)}, &fakeAI{})

		_, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "   "})
		if !errors.Is(err, analysis.ErrQueryRequired) {
			t.Errorf("error mismatch: got %v, want ErrQueryRequired", err)
		}
	})

	t.Run("no snapshot propagates", func(t *testing.T) {
		uc := newTestUseCase(&fakeVendorUC{snapErr: vendor.ErrNoSnapshot}, &fakeAI{})

		_, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if !errors.Is(err, vendor.ErrNoSnapshot) {
			t.Errorf("error mismatch: got %v, want ErrNoSnapshot", err)
		}
	})

	t.Run("valid JSON content is parsed through", func(t *testing.T) {
		ai := &fakeAI{content: `{
			"analysis": "strong field",
			"compliance": [{"vendor": "Vendor 000", "score": 85, "issues": ["minor labeling gap"], "carbon_score": 40}],
			"recommendations": ["pick Vendor 000"],
			"environmentalImpact": 12.5,
			"cost": 104.2
		}`}
		uc := newTestUseCase(&fakeVendorUC{vendors: sampleVendors(3)}, ai)

		got, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}

		if got.AnalysisText != "strong field" {
			t.Errorf("AnalysisText mismatch: got %q", got.AnalysisText)
		}
		if len(got.ComplianceEntries) != 1 || got.ComplianceEntries[0].VendorName != "Vendor 000" {
			t.Fatalf("ComplianceEntries mismatch: got %v", got.ComplianceEntries)
		}
		if got.ComplianceEntries[0].Score != 85 || got.ComplianceEntries[0].CarbonScore != 40 {
			t.Errorf("entry scores mismatch: got %+v", got.ComplianceEntries[0])
		}
		if got.EnvironmentalImpactKgCO2e != 12.5 || got.EstimatedCostUSD != 104.2 {
			t.Errorf("estimates mismatch: got %v / %v", got.EnvironmentalImpactKgCO2e, got.EstimatedCostUSD)
		}
		if ai.gotTemp != 0.3 || ai.gotMax != 2000 {
			t.Errorf("completion params mismatch: got temp %v max %d", ai.gotTemp, ai.gotMax)
		}
	})

	t.Run("fenced JSON is unwrapped", func(t *testing.T) {
		ai := &fakeAI{content: "```json\n{\"analysis\": \"ok\", \"environmentalImpact\": 1, \"cost\": 2}\n```"}
		uc := newTestUseCase(&fakeVendorUC{vendors: sampleVendors(1)}, ai)

		got, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if got.AnalysisText != "ok" || got.EnvironmentalImpactKgCO2e != 1 {
			t.Errorf("parsed result mismatch: got %+v", got)
		}
	})

	t.Run("prose content falls back deterministically", func(t *testing.T) {
		ai := &fakeAI{content: "I could not produce structured output, but the vendors look fine."}
		uc := newTestUseCase(&fakeVendorUC{vendors: sampleVendors(1)}, ai)

		got, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}

		if got.AnalysisText != ai.content {
			t.Errorf("AnalysisText mismatch: got %q, want raw content", got.AnalysisText)
		}
		if len(got.ComplianceEntries) != 0 || len(got.Recommendations) != 0 {
			t.Errorf("fallback should carry empty entries, got %+v", got)
		}
		if got.EnvironmentalImpactKgCO2e != 0.5 || got.EstimatedCostUSD != 0.02 {
			t.Errorf("fallback estimates mismatch: got %v / %v", got.EnvironmentalImpactKgCO2e, got.EstimatedCostUSD)
		}
	})

	t.Run("transport failure is a typed error", func(t *testing.T) {
		uc := newTestUseCase(&fakeVendorUC{vendors: sampleVendors(1)}, &fakeAI{err: errors.New("connection refused")})

		_, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if !errors.Is(err, analysis.ErrAnalysisUnavailable) {
			t.Errorf("error mismatch: got %v, want ErrAnalysisUnavailable", err)
		}
	})

	t.Run("prompt carries only the sample", func(t *testing.T) {
		ai := &fakeAI{content: `{"analysis": "ok"}`}
		uc := newTestUseCase(&fakeVendorUC{vendors: sampleVendors(25)}, ai)

		if _, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"}); err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}

		if got := strings.Count(ai.gotUser, `"vendor_name"`); got != 20 {
			t.Errorf("sample size mismatch: got %d vendors in prompt, want 20", got)
		}
		if !strings.Contains(ai.gotSys, "procurement analyst") {
			t.Errorf("system prompt mismatch: got %q", ai.gotSys)
		}
	})
}

func TestAnalyzeCache(t *testing.T) {
	ctx := context.Background()
	content := `{"analysis": "cached ok", "environmentalImpact": 2, "cost": 3}`

	t.Run("repeated query is served from cache", func(t *testing.T) {
		ai := &fakeAI{content: content}
		uc := newTestUseCaseWithCache(&fakeVendorUC{vendors: sampleVendors(3)}, ai, newFakeRedis())

		first, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		second, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if err != nil {
			t.Fatalf("second Analyze failed: %v", err)
		}

		if ai.calls != 1 {
			t.Errorf("completion calls mismatch: got %d, want 1", ai.calls)
		}
		if second.AnalysisText != first.AnalysisText || second.EnvironmentalImpactKgCO2e != first.EnvironmentalImpactKgCO2e {
			t.Errorf("cached result mismatch: got %+v, want %+v", second, first)
		}
	})

	t.Run("different query misses the cache", func(t *testing.T) {
		ai := &fakeAI{content: content}
		uc := newTestUseCaseWithCache(&fakeVendorUC{vendors: sampleVendors(3)}, ai, newFakeRedis())

		if _, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"}); err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if _, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "solvents"}); err != nil {
			t.Fatalf("second Analyze failed: %v", err)
		}

		if ai.calls != 2 {
			t.Errorf("completion calls mismatch: got %d, want 2", ai.calls)
		}
	})

	t.Run("cache outage does not fail analysis", func(t *testing.T) {
		ai := &fakeAI{content: content}
		cache := newFakeRedis()
		cache.getErr = errors.New("connection refused")
		cache.setErr = errors.New("connection refused")
		uc := newTestUseCaseWithCache(&fakeVendorUC{vendors: sampleVendors(3)}, ai, cache)

		got, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if got.AnalysisText != "cached ok" {
			t.Errorf("AnalysisText mismatch: got %q", got.AnalysisText)
		}
		if ai.calls != 1 {
			t.Errorf("completion calls mismatch: got %d, want 1", ai.calls)
		}
	})

	t.Run("corrupt entry falls through to the gateway", func(t *testing.T) {
		ai := &fakeAI{content: content}
		cache := newFakeRedis()
		uc := newTestUseCaseWithCache(&fakeVendorUC{vendors: sampleVendors(3)}, ai, cache)

		if _, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"}); err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		for key := range cache.store {
			cache.store[key] = "{{not json"
		}

		got, err := uc.Analyze(ctx, analysis.AnalyzeInput{Query: "paint"})
		if err != nil {
			t.Fatalf("second Analyze failed: %v", err)
		}
		if ai.calls != 2 {
			t.Errorf("completion calls mismatch: got %d, want 2", ai.calls)
		}
		if got.AnalysisText != "cached ok" {
			t.Errorf("AnalysisText mismatch: got %q", got.AnalysisText)
		}
	})
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```json\n{\"a\":1}\n```  ", "{\"a\":1}"},
	}

	for _, c := range cases {
		if got := stripFences(c.in); got != c.want {
			t.Errorf("stripFences(%q) mismatch: got %q, want %q", c.in, got, c.want)
		}
	}
}
