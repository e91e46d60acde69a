package main

import "github.com/cleitonmarx/marvins-market/internal/app"

func main() {
	err := app.NewMarvinApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
