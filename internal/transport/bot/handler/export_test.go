package handler

import (
	"context"

	"tg_dealscan/internal/domain/entity"
)

func Publish(h *Handler, ctx context.Context, messages ...entity.OutboundMessage) error { //nolint:revive
	return h.publish(ctx, messages...)
}
