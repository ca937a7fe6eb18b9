//
// Corvid - a UCI chess engine
//
// MIT License
//
// Copyright (c) 2021-2026 Corvid Chess Engine Contributors
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

// LogLevels maps the command line / config file log level names onto
// the numeric levels used by op/go-logging (CRITICAL=0 .. DEBUG=5).
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// logConfiguration is the [Log] section of config.toml.
type logConfiguration struct {
	LogPath      string
	LogLvl       int
	SearchLogLvl int
}

func init() {
	Settings.Log.LogPath = "./logs"
	Settings.Log.LogLvl = LogLevel
	Settings.Log.SearchLogLvl = SearchLogLevel
}

// setupLogLvl reconciles the [Log] section read from the config file
// with LogLevel/SearchLogLevel: a non-zero file value (or the default
// copied in by init) replaces the level, and SearchLogLevel falls back
// to LogLevel when the file leaves it at zero. Command-line levels are
// applied by cmd/corvid after Setup and so override both.
func setupLogLvl() {
	if Settings.Log.LogLvl != 0 {
		LogLevel = Settings.Log.LogLvl
	}
	if Settings.Log.SearchLogLvl != 0 {
		SearchLogLevel = Settings.Log.SearchLogLvl
	} else {
		SearchLogLevel = LogLevel
	}
	Settings.Log.LogLvl = LogLevel
	Settings.Log.SearchLogLvl = SearchLogLevel
}
