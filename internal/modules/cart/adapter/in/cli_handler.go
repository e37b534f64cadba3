package in

import (
	"context"
	"encoding/json"
	"fmt"

	cartdto "ancare/internal/modules/cart/dto"
	cartin "ancare/internal/modules/cart/port/in"
)

type CLIHandler struct {
	usecase cartin.Usecase
}

func NewCLIHandler(usecase cartin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddByName(ctx context.Context, name string) (cartdto.LineItemOutput, error) {
	payload, err := json.Marshal(name)
	if err != nil {
		return cartdto.LineItemOutput{}, fmt.Errorf("encode name: %w", err)
	}
	return h.usecase.AddItem(ctx, cartdto.AddItemInput{Payload: payload})
}

func (h CLIHandler) AddJSON(ctx context.Context, raw string) (cartdto.LineItemOutput, error) {
	return h.usecase.AddItem(ctx, cartdto.AddItemInput{Payload: json.RawMessage(raw)})
}

func (h CLIHandler) RemoveAt(ctx context.Context, index int) (cartdto.CartOutput, error) {
	return h.usecase.RemoveAt(ctx, index)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Show(ctx context.Context) (cartdto.CartOutput, error) {
	return h.usecase.Load(ctx)
}

