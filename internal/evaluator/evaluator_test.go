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

package evaluator

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/franky0x88/internal/config"
	"github.com/frankkopp/franky0x88/internal/logging"
	"github.com/frankkopp/franky0x88/internal/position"
)

var logTest *logging2.Logger

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	out.Println("Test Main Setup Tests ====================")
	Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestStartPosZeroEval(t *testing.T) {
	Settings.Eval.Tempo = 0
	p := position.NewPosition()
	e := NewEvaluator()
	v := e.Evaluate(p)
	out.Println("Value =", v)
	assert.EqualValues(t, 0, v)
}

func TestMirroredZeroEval(t *testing.T) {
	Settings.Eval.Tempo = 0
	p, err := position.NewPositionFen("r1bq1rk1/pppp1pp1/2n2n1p/1B2p3/1b2P3/2N2N1P/PPPP1PP1/R1BQ1RK1 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	v := e.Evaluate(p)
	out.Println("Value =", v)
	assert.EqualValues(t, 0, v)
}

func TestEvaluate_MaterialAdvantageIsPositive(t *testing.T) {
	Settings.Eval.Tempo = 0
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	v := e.Evaluate(p)
	assert.True(t, v > 800, "a lone extra queen should dominate the score")
}

func TestEvaluate_InsufficientMaterialIsDraw(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	e := NewEvaluator()
	assert.EqualValues(t, 0, e.Evaluate(p))
}
