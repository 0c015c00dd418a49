package service

import (
	"github.com/nikolayk812/airport-services/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func orderItemsField(items []domain.CartItem) zap.Field {
	return zap.Array("items", zapcore.ArrayMarshalerFunc(func(enc zapcore.ArrayEncoder) error {
		for _, item := range items {
			if err := enc.AppendObject(cartItemMarshaler(item)); err != nil {
				return err
			}
		}
		return nil
	}))
}

func cartItemMarshaler(item domain.CartItem) zapcore.ObjectMarshalerFunc {
	return func(enc zapcore.ObjectEncoder) error {
		enc.AddString("id", item.Service.ID)
		enc.AddString("name", item.Service.Name)
		enc.AddString("price", item.Service.Price.Amount.String())
		enc.AddInt("quantity", item.Quantity)
		enc.AddString("line_total", item.LineTotal().Amount.String())
		return nil
	}
}
