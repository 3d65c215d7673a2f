package port

import "friendlyenum/internal/domain"

type HeaderParser interface {
	Parse(lines []string) *domain.HeaderModel
}
