package solver

import (
	"fmt"

	"github.com/katalvlaran/linsolve/sparse"
)

// New maps cfg.Kind to its backend adapter. The matrix may be nil; every
// adapter then defers setup work to the first Solve. Construction never
// runs setup work beyond what the configuration demands (eager
// factorization under Presolve, eager hierarchy/native conversion when a
// matrix is already present).
func New(cfg Config, mtx *sparse.CSR, opts ...Option) (LinearSolver, error) {
	switch cfg.Kind {
	case KindDirect:
		return NewDirect(cfg, mtx, opts...)
	case KindIterative:
		s, err := NewIterative(cfg, opts...)
		if err != nil {
			return nil, err
		}
		s.SetMatrix(mtx)

		return s, nil
	case KindMultigrid:
		return NewMultigrid(cfg, mtx, opts...)
	case KindDistributed:
		return NewDistributed(cfg, mtx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}
