package component

import "ashdelve/internal/ecs"

const CName ecs.ComponentType = 8

type Name struct {
	Value string
}

func (Name) Type() ecs.ComponentType { return CName }
