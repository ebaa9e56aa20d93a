package generator

import (
	"github.com/samber/do/v2"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Generator, error) {
		repo := do.MustInvoke[repository.Repository](i)
		return New(repo), nil
	})
}
