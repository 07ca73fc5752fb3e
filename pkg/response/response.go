package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"procurement-srv/pkg/discord"
	pkgErrors "procurement-srv/pkg/errors"
	"procurement-srv/pkg/locale"
)

// OK writes a 200 response with the standard envelope. The envelope
// message follows the request locale.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   localizedMessage(successMessages, locale.GetLang(c.Request.Context())),
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status and
// message; anything else is rendered as a 500 and, when a Discord client
// is configured, reported as an alert.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		if httpErr.StatusCode >= http.StatusInternalServerError {
			notify(c, discordClient, "Internal error", httpErr.Message, err)
		}
		return
	}

	msg := localizedMessage(internalErrorMessages, locale.GetLang(c.Request.Context()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   msg,
	})
	notify(c, discordClient, "Unmapped error", msg, err)
}

// ErrorWithMap resolves err through the mapping before rendering.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, discordClient discord.IDiscord) {
	if mapped, ok := mapping[err]; ok {
		Error(c, mapped, discordClient)
		return
	}
	Error(c, err, discordClient)
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   localizedMessage(internalErrorMessages, locale.GetLang(c.Request.Context())),
	})
	notify(c, discordClient, "Panic recovered", fmt.Sprintf("%v", recovered), fmt.Errorf("%v", recovered))
}

func notify(c *gin.Context, discordClient discord.IDiscord, title, description string, err error) {
	if discordClient == nil {
		return
	}
	// Alerting must never block or fail the response.
	go func(ctx context.Context, method, path string) {
		_ = discordClient.SendError(ctx, title,
			fmt.Sprintf("%s | %s %s", description, method, path), err)
	}(context.Background(), c.Request.Method, c.Request.URL.Path)
}
