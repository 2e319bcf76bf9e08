package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/osuushi/brainwall"
	"github.com/osuushi/brainwall/checker"
	"github.com/osuushi/brainwall/dbg"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the checker. "check" validates a pose and prints a report, exiting
// with status 1 when the pose is invalid. "draw" renders a problem, with or
// without a pose, to a PNG.

var (
	app     = kingpin.New("brainwall", "Check poses for the figure-in-hole puzzle.")
	verbose = app.Flag("verbose", "Log checker internals to stderr.").Short('v').Envar("BRAINWALL_VERBOSE").Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Envar("NO_COLOR").Bool()

	checkCmd     = app.Command("check", "Validate a pose against a problem.")
	checkProblem = checkCmd.Arg("problem", "Problem JSON file.").Required().ExistingFile()
	checkPose    = checkCmd.Arg("pose", "Pose JSON file.").Required().ExistingFile()
	checkJSON    = checkCmd.Flag("json", "Print the verdict as JSON instead of a report.").Bool()

	drawCmd     = app.Command("draw", "Render a problem, and optionally a pose, to a PNG.")
	drawProblem = drawCmd.Arg("problem", "Problem JSON file.").Required().ExistingFile()
	drawPose    = drawCmd.Arg("pose", "Pose JSON file.").ExistingFile()
	drawOut     = drawCmd.Flag("out", "PNG file to write.").Short('o').Default("brainwall.png").String()
	drawScale   = drawCmd.Flag("scale", "Pixels per unit.").Envar("BRAINWALL_SCALE").Default("4").Float64()
	drawLabels  = drawCmd.Flag("labels", "Label vertices with their index.").Bool()
	drawImgcat  = drawCmd.Flag("imgcat", "Print the picture to the terminal (iTerm only).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		checker.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	switch command {
	case checkCmd.FullCommand():
		if !runCheck() {
			os.Exit(1)
		}
	case drawCmd.FullCommand():
		runDraw()
	}
}

// runCheck reports whether the pose is valid.
func runCheck() bool {
	p, err := brainwall.LoadProblem(*checkProblem)
	app.FatalIfError(err, "check")
	pose, err := brainwall.LoadPose(*checkPose)
	app.FatalIfError(err, "check")

	c, err := brainwall.NewPoseChecker(p, pose)
	app.FatalIfError(err, "check")
	verdict, err := brainwall.Validate(c, pose)
	app.FatalIfError(err, "check")

	if *checkJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		app.FatalIfError(encoder.Encode(verdict), "check")
	} else {
		app.FatalIfError(dbg.Report(os.Stdout, c, verdict, !*noColor), "check")
	}
	return verdict.Valid
}

func runDraw() {
	p, err := brainwall.LoadProblem(*drawProblem)
	app.FatalIfError(err, "draw")

	var (
		c       *brainwall.Checker
		pose    *brainwall.Pose
		verdict *brainwall.Verdict
	)
	if *drawPose != "" {
		pose, err = brainwall.LoadPose(*drawPose)
		app.FatalIfError(err, "draw")
		c, err = brainwall.NewPoseChecker(p, pose)
		app.FatalIfError(err, "draw")
		verdict, err = brainwall.Validate(c, pose)
		app.FatalIfError(err, "draw")
	} else {
		c, err = brainwall.NewChecker(p, nil)
		app.FatalIfError(err, "draw")
	}

	img := dbg.Draw(c, pose, verdict, dbg.DrawOptions{Scale: *drawScale, Labels: *drawLabels})
	app.FatalIfError(dbg.SavePNG(*drawOut, img), "draw")
	fmt.Printf("Wrote %s\n", *drawOut)
	if *drawImgcat {
		dbg.Show(*drawOut)
	}
}
