package port

import "friendlyenum/internal/domain"

type ImplementationGenerator interface {
	Generate(model *domain.HeaderModel) (string, error)
}
