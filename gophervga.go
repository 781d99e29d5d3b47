// This file is part of GopherVGA.
//
// GopherVGA is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherVGA is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherVGA.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gophervga/gui"
	"github.com/jetsetilly/gophervga/gui/cellview"
	"github.com/jetsetilly/gophervga/logger"
	"github.com/jetsetilly/gophervga/mirror"
	"github.com/jetsetilly/gophervga/mirror/serialmirror"
	"github.com/jetsetilly/gophervga/modalflag"
	"github.com/jetsetilly/gophervga/performance"
	"github.com/jetsetilly/gophervga/performance/limiter"
	"github.com/jetsetilly/gophervga/regression"
	"github.com/jetsetilly/gophervga/statsview"
	"github.com/jetsetilly/gophervga/terminal/colorterm"
	"github.com/jetsetilly/gophervga/terminal/plainterm"
	"github.com/jetsetilly/gophervga/version"
	"github.com/jetsetilly/gophervga/vga"
	"golang.org/x/term"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when a mode provides its own
	// handling. the RUN mode sends this once the viewer has control of the
	// terminal, at which point a ctrl-c arrives as a keypress and not as a
	// signal.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. state requests
	//
	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate a quit and the exit status.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "CAT", "PERF", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "CAT":
		err = cat(md)

	case "PERF":
		err = perform(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	view := md.AddString("view", "CELL", "viewer to use: CELL, TERM")
	rate := md.AddInt("rate", 4, "number of writes to the console per second")
	mirrorFile := md.AddString("mirror", "", "file to mirror console output to")
	serialPort := md.AddString("serial", "", "serial device to mirror console output to")
	baud := md.AddUint("baud", 9600, "baud rate of the serial mirror")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// check and warn if unneeded arguments have been specified
	md.Visit(func(flg string) {
		if flg == "baud" && *serialPort == "" {
			fmt.Printf("! ignored %s flag without the serial flag\n", flg)
		}
	})

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	// the package level console is displayed and fed. with no file argument
	// the built in demonstration is used, which writes through the package
	// level Print functions
	console := vga.Default()

	var source io.ReadCloser

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		source, err = os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer source.Close()
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	detach, err := attachMirror(console, *mirrorFile, *serialPort, *baud)
	if err != nil {
		return err
	}
	defer detach()

	var viewer gui.Viewer

	switch strings.ToUpper(*view) {
	default:
		fmt.Printf("! unknown viewer type (%s) defaulting to cell\n", *view)
		fallthrough
	case "CELL":
		viewer = &cellview.CellView{}
	case "TERM":
		viewer = &colorterm.ColorTerminal{}
	}

	// turn off fallback ctrl-c handling before the viewer takes control of
	// the terminal. from here on a ctrl-c is a keypress for the viewer to
	// interpret
	sync.state <- stateRequest{req: reqNoIntSig}

	err = viewer.Initialise()
	if err != nil {
		return err
	}
	defer viewer.CleanUp()

	// blank the display before the viewer is attached
	console.Clear()
	console.AddRenderer(viewer)

	// feed the console until the viewer quits
	lim := limiter.NewRateLimiter(*rate)
	endFeed := make(chan bool)
	feedEnded := make(chan bool)

	go func() {
		defer close(feedEnded)
		if source == nil {
			demo(lim, endFeed)
		} else {
			err := feed(console, source, lim, endFeed)
			if err != nil {
				logger.Logf(logger.Allow, "run", "%v", err)
			}
		}
	}()

	// wait for a quit keypress in the viewer
	<-viewer.Quit()

	// the feed must have finished with the console before the viewer and the
	// mirror are taken down
	close(endFeed)
	<-feedEnded

	return console.End()
}

// feed writes the source to the console a line at a time, at a rate set by
// the limiter. returns early, without error, if the end channel closes.
func feed(console *vga.Console, source io.Reader, lim *limiter.RateLimiter, end <-chan bool) error {
	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		select {
		case <-end:
			return nil
		case <-lim.Tick():
		}

		fmt.Fprintf(console, "%s\n", scanner.Text())
	}
	return scanner.Err()
}

// attachMirror connects a console to the mirror targets given on the command
// line. the returned function detaches the mirror and closes the targets. it
// must not be called while anything can still write to the console.
func attachMirror(console *vga.Console, file string, device string, baud uint) (func(), error) {
	var targets []io.Writer
	var closers []io.Closer

	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return nil, err
		}
		targets = append(targets, mirror.NewWriter("file mirror", f))
		closers = append(closers, f)
	}

	if device != "" {
		s, err := serialmirror.Open(device, baud)
		if err != nil {
			closeAll()
			return nil, err
		}
		targets = append(targets, mirror.NewWriter("serial mirror", s))
		closers = append(closers, s)
	}

	switch len(targets) {
	case 0:
	case 1:
		console.SetMirror(targets[0])
	default:
		console.SetMirror(io.MultiWriter(targets...))
	}

	return func() {
		console.SetMirror(nil)
		closeAll()
	}, nil
}

func cat(md *modalflag.Modes) error {
	md.NewMode()

	mono := md.AddBool("mono", false, "render without colour")
	mirrorFile := md.AddString("mirror", "", "file to mirror console output to")
	serialPort := md.AddString("serial", "", "serial device to mirror console output to")
	baud := md.AddUint("baud", 9600, "baud rate of the serial mirror")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	var source io.Reader

	switch len(md.RemainingArgs()) {
	case 0:
		source = os.Stdin
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		source = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	console := vga.NewConsole(vga.NewWriter(vga.NewSurface()))
	console.Clear()

	detach, err := attachMirror(console, *mirrorFile, *serialPort, *baud)
	if err != nil {
		return err
	}
	defer detach()

	if _, err := io.Copy(console, source); err != nil {
		return err
	}

	// colour output unless it has been declined or stdout is not going to a
	// terminal
	console.BorrowSurface(func(srf *vga.Surface) {
		if *mono || !term.IsTerminal(int(os.Stdout.Fd())) {
			err = plainterm.RenderMonochrome(os.Stdout, srf)
		} else {
			err = plainterm.Render(os.Stdout, srf)
		}
	})

	return err
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	writers := md.AddInt("writers", 4, "number of concurrent console writers")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	stats := md.AddBool("statsview", false, "run the statsview utility")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	err = performance.Check(md.Output, *profile, *duration, *writers)
	if err != nil {
		return err
	}

	// the stats server dies with the process so give the user a chance to
	// inspect the figures before finishing
	if *stats && statsview.Available() {
		fmt.Print("press return to finish")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}

	return nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		err = regression.RegressRun(md.Output, *verbose, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless the yes flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

// answers "yes" to all confirmation requests. used with the "yes" flag of
// the DELETE submode.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "cells", "fingerprint mode: CELLS, RENDER")
	notes := md.AddString("notes", "", "annotation for the database entry")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`A regression test is a script: a file of text that is fed through a fresh
console. A fingerprint of the display that results is stored in the regression
database and compared against on every run of the test.

The fingerprint mode selects what is fingerprinted. CELLS fingerprints the
cells of the surface. RENDER fingerprints the ANSI rendering of the surface.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo. progress output interferes with the log so
	// neuter it when logging is requested
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
		md.Output = &nopWriter{}
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
		m, err := regression.ParseMode(*mode)
		if err != nil {
			return err
		}

		reg := &regression.TextRegression{
			Script: md.GetArg(0),
			Mode:   m,
			Notes:  *notes,
		}

		err = regression.RegressAdd(md.Output, reg)
		if err != nil {
			// using carriage return (without newline) at the beginning of
			// the error message so that the last progress output from
			// RegressAdd() is overwritten
			return fmt.Errorf("\rerror adding regression test: %v", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}

// nopWriter is an empty writer.
type nopWriter struct{}

func (*nopWriter) Write(p []byte) (n int, err error) {
	return 0, nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintf(md.Output, "%s\n", rev)
	}

	return nil
}
