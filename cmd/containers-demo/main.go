package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"hop.computer/containers/config"
	"hop.computer/containers/dialogue"
	"hop.computer/containers/flags"
	"hop.computer/containers/pkg/must"
)

func main() {
	f, err := flags.ParseDemoArgs(os.Args)
	if err != nil {
		logrus.Fatalf("unable to parse flags: %s", err)
	}
	logrus.SetLevel(f.LogLevel())

	scenario := must.Do(config.LoadScenario(f.ConfigPath))
	logrus.WithFields(logrus.Fields{
		"config": f.ConfigPath,
		"demo":   f.Demo,
	}).Debug("loaded scenario")

	r := dialogue.NewRenderer(os.Stdout, f.Plain)
	step := f.Step && r.Interactive()

	r.Banner(scenario.Title)
	for _, d := range demos {
		if !f.Runs(d.name) {
			continue
		}
		if step {
			ok, err := dialogue.Confirm("Run the " + d.title + " demonstration?")
			if err != nil {
				logrus.Errorf("prompt failed: %s", err)
				break
			}
			if !ok {
				continue
			}
		}
		d.run(r, scenario)
	}
	r.Banner("end of demonstration")

	if step {
		if err := dialogue.WaitForEnter("Press any key to exit..."); err != nil {
			logrus.Error(err)
		}
	}
}
