package api

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mentoria-raiz/inscricoes/auth"
)

const (
	ctxRequestIdKey = "REQUEST_ID"
	ctxLoggerKey    = "LOGGER"
	ctxClaimsKey    = "CLAIMS"
)

func ctxWithRequestId(ctx context.Context, requestId uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, logger)
}

func (a *API) getLoggerOrBaseLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey).(*slog.Logger); ok {
		return logger
	}

	return a.logger
}

func ctxWithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, ctxClaimsKey, claims)
}

func getClaimsFromCtx(ctx context.Context) auth.Claims {
	return ctx.Value(ctxClaimsKey).(auth.Claims)
}
