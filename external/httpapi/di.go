package httpapi

import (
	"github.com/samber/do/v2"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/config"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/generator"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*WorkoutHandler, error) {
		return NewWorkoutHandler(
			do.MustInvoke[*generator.Generator](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*SessionHandler, error) {
		return NewSessionHandler(do.MustInvoke[repository.Repository](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*TemplateHandler, error) {
		return NewTemplateHandler(do.MustInvoke[repository.Repository](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*Server, error) {
		return NewServer(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*WorkoutHandler](i),
			do.MustInvoke[*SessionHandler](i),
			do.MustInvoke[*TemplateHandler](i),
		), nil
	})
}
