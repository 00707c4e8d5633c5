package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-tracker/errors"
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/http/middleware"
)

// getRequestID returns the id assigned by the request id middleware,
// falling back to the X-Request-ID request header
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id, ok := c.Get(middleware.RequestIDKey).(string); ok && id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized 200 response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response using provided logger
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusCreated, data)
}

func respond(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := common.SuccessResponse{
		Code:    status,
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger.
// Usecase errors are translated through errors.FromUsecase.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := errors.FromUsecase(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	} else if len(appErr.Details) > 0 {
		for _, k := range []string{"field", "meeting_id", "action_id"} {
			if v, ok := appErr.Details[k]; ok {
				info = k + "=" + v
				break
			}
		}
	}
	// Internal errors never leak their cause
	if appErr.Code == errors.ErrorCode_INTERNAL {
		info = ""
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// ErrorHandler renders errors returned by handlers and middleware.
// echo.HTTPError keeps its status, everything else goes through HandleError.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if stdErrors.As(err, &httpErr) {
			message := http.StatusText(httpErr.Code)
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
			code := errors.ErrorCode_INTERNAL
			switch httpErr.Code {
			case http.StatusNotFound:
				code = errors.ErrorCode_NOT_FOUND
			case http.StatusMethodNotAllowed, http.StatusBadRequest, http.StatusUnsupportedMediaType:
				code = errors.ErrorCode_INVALID_PAYLOAD
			case http.StatusTooManyRequests:
				code = errors.ErrorCode_TOO_MANY_REQUESTS
			}
			if err := c.JSON(httpErr.Code, common.ErrorResponse{Code: code, Message: message}); err != nil && logger != nil {
				logger.Error("http.response.write_failed", zap.Error(err))
			}
			return
		}

		if err := HandleError(logger, c, err); err != nil && logger != nil {
			logger.Error("http.response.write_failed", zap.Error(err))
		}
	}
}

// parseID reads an unsigned integer path parameter
func parseID(c echo.Context, name string) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).MustUint(name, &id).BindError(); err != nil {
		return 0, errors.ErrInvalidPayload(err)
	}
	return id, nil
}
