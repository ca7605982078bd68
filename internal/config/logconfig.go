//
// franky0x88 - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// logConfiguration holds the log levels read from the config file.
// Levels follow "github.com/op/go-logging"'s scale: 0=CRITICAL,
// 1=ERROR, 2=WARNING, 3=NOTICE, 4=INFO, 5=DEBUG.
type logConfiguration struct {
	LogLvl       int
	SearchLogLvl int
	TestLogLvl   int
}

// setupLogLvl overwrites the LogLevel/SearchLogLevel/TestLogLevel
// package vars from the config file if it set them to something other
// than the zero value, leaving the vars untouched otherwise. It does not
// look at the cmd line.
func setupLogLvl() {
	if Settings.Log.LogLvl != 0 {
		LogLevel = Settings.Log.LogLvl
	}
	if Settings.Log.SearchLogLvl != 0 {
		SearchLogLevel = Settings.Log.SearchLogLvl
	}
	if Settings.Log.TestLogLvl != 0 {
		TestLogLevel = Settings.Log.TestLogLvl
	}
}
