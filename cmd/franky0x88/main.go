/*
 * franky0x88 - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/franky0x88/internal/config"
	"github.com/frankkopp/franky0x88/internal/logging"
	"github.com/frankkopp/franky0x88/internal/movegen"
	"github.com/frankkopp/franky0x88/internal/position"
	"github.com/frankkopp/franky0x88/internal/search"
	"github.com/frankkopp/franky0x88/internal/testsuite"
	"github.com/frankkopp/franky0x88/internal/uci"
	"github.com/frankkopp/franky0x88/internal/util"
	"github.com/frankkopp/franky0x88/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", -1, "standard log level 0-5 (critical..debug), default from config/file")
	searchLogLvl := flag.Int("searchloglvl", -1, "search log level 0-5 (critical..debug), default from config/file")
	cpuProfile := flag.Bool("cpuprofile", false, "writes a CPU profile to ./cpu.pprof")
	testSuite := flag.String("testsuite", "", "path to file containing EPD tests or folder containing EPD files")
	testMovetime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	testSearchdepth := flag.Int("testdepth", 0, "search depth limit for each test position")
	perft := flag.Int("perft", 0, "starts perft on the start position up to the given depth\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFen, "fen for perft and nps test")
	nps := flag.Int("nps", 0, "starts a nodes per second test on the start position for the given amount of seconds\nuse -fen to provide a different position")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// set config file - needs to be set before config.Setup() is called,
	// otherwise the default will be used.
	config.ConfFile = *configFile

	// read config file
	config.Setup()

	// command line overwrites config file and defaults
	if *logLvl >= 0 {
		config.LogLevel = *logLvl
	}
	if *searchLogLvl >= 0 {
		config.SearchLogLevel = *searchLogLvl
	}

	// resetting log level on the standard log - required as most packages
	// hold on to the standard logger as a global var initialized before
	// main() runs and must be reset to the actual configured level.
	logging.GetLog()

	// nodes-per-second test
	if *nps != 0 {
		s := search.NewSearch()
		p := position.NewPosition(*fen)
		sl := search.NewSearchLimits()
		sl.TimeControl = true
		sl.MoveTime = time.Duration(*nps) * time.Second
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		out.Println()
		out.Println("NPS : ", util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime))
		return
	}

	// perft
	if *perft != 0 {
		for d := 1; d <= *perft; d++ {
			p := movegen.NewPerft()
			nodes, err := p.Run(*fen, d)
			if err != nil {
				fmt.Println(err)
				return
			}
			out.Printf("Perft depth %d: %d nodes (captures=%d ep=%d castles=%d promotions=%d checks=%d mates=%d)\n",
				d, nodes, p.CaptureCounter, p.EnPassantCounter, p.CastleCounter, p.PromotionCounter, p.CheckCounter, p.CheckMateCounter)
		}
		return
	}

	// execute test suite if requested
	if *testSuite != "" {
		name := *testSuite
		fi, err := os.Stat(name)
		if err != nil {
			fmt.Println(err)
			return
		}
		switch mode := fi.Mode(); {
		case mode.IsDir():
			out.Println(testsuite.FeatureTests(name+"/", time.Duration(*testMovetime)*time.Millisecond, *testSearchdepth))
		case mode.IsRegular():
			ts, err := testsuite.NewTestSuite(name, time.Duration(*testMovetime)*time.Millisecond, *testSearchdepth)
			if err != nil {
				fmt.Println(err)
				return
			}
			ts.RunTests()
		}
		return
	}

	// starting the uci handler and waiting for communication with
	// the UCI user interface
	u := uci.NewUciHandler()
	u.Loop()
}

func printVersionInfo() {
	out.Printf("franky0x88 %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
