package log_test

import (
	"fmt"
	"os"
	"time"

	"github.com/ardnew/logtree/log"
)

func stdout() log.Option {
	return log.WithConsole(log.NewStreamConsole(os.Stdout, os.Stdout))
}

func Example() {
	root := log.NewConsole(stdout(), log.WithPretty(false), log.WithTimeLayout("none"))

	root.Info("starting")
	root.SubLogger("db").Warn("slow query", "users", 250)

	// Output:
	// INFO root starting
	// WARN db slow query [users, 250]
}

func ExampleRoot_AttachTransport() {
	root := log.NewConsole(log.WithConsoleOutput(false))

	root.SubLogger("a").SubLogger("b").Error("deep")

	_ = root.AttachTransport(func(r log.Record) {
		fmt.Println(r.Meta.Name, r.Meta.ParentNames, r.Msg)
	})

	root.Info("live")

	// Output:
	// b [root a] deep
	// root [] live
}

func ExampleLogger_SetLogLevel() {
	root := log.NewConsole(log.WithConsoleOutput(false))

	root.SetLogLevel(log.LevelError)
	c := root.SubLogger("c")
	root.SetLogLevel(log.LevelWarn)

	fmt.Println(c.LogLevel())

	// Output:
	// warn
}

func ExampleNewConsole_clock() {
	at := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	root := log.NewConsole(
		stdout(),
		log.WithPretty(false),
		log.WithClock(func() time.Time { return at }),
	)

	root.Info("tick")

	// Output:
	// INFO [12:30:00.000] root tick
}
