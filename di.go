package lagra

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module for a named configuration store. The name
// is used as both the module name and the DI named tag for *Store, so an
// application can carry several stores side by side. The store is opened
// lazily by the container and saved when the application stops.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() *Store {
					return Open(path, opts...)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
		fx.Invoke(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, store *Store) {
					lifecycle.Append(fx.Hook{
						OnStop: func(context.Context) error {
							return store.Save()
						},
					})
				},
				fx.ParamTags("", fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
