package main

import (
	"HalalGuardian/internal/bootstrap"
	pkg "HalalGuardian/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
