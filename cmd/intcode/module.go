package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/amplifiers"
	"github.com/reusee/intcode/debugs"
)

type Module struct {
	dscope.Module
	Amplifiers amplifiers.Module
	Debugs     debugs.Module
}
