package context

import (
	"context"

	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
)

func WithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

func GetActor(ctx context.Context) (model.Actor, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return model.Actor{}, false
	}
	actor, ok := v.(model.Actor)
	return actor, ok
}

func WithTokenID(ctx context.Context, jti string) context.Context {
	return context.WithValue(ctx, constant.TokenIDKey, jti)
}

func GetTokenID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(constant.TokenIDKey).(string)
	return v, ok && v != ""
}
