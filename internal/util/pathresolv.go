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

package util

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const pathDebug = false

// ResolveFile resolves a path to a file, trying, in order: the path as
// given if absolute, then relative to the working directory, the
// executable's directory, and the user's home directory.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, fmt.Errorf("file could not be found: %s", file)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if dir, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(dir), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if dir, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	return file, fmt.Errorf("file could not be found: %s", file)
}

// ResolveFolder resolves a path to a folder using the same search
// order as ResolveFile. The folder is never created.
func ResolveFolder(folder string) (string, error) {
	folder = filepath.Clean(folder)

	if filepath.IsAbs(folder) {
		if folderExists(folder) {
			return folder, nil
		}
		return folder, fmt.Errorf("folder could not be found: %s", folder)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if dir, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(dir), folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if dir, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(dir, folder); folderExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	return folder, fmt.Errorf("folder could not be found: %s", folder)
}

// ResolveCreateFolder returns an absolute folderPath as given, creating
// it if missing. For a relative path it looks only for the path's last
// element in the working directory (not the executable's or home
// directory) and creates it there if missing, falling back to the OS
// temp directory if that fails.
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if folderExists(folderPath) {
			return folderPath, nil
		}
		return folderPath, os.Mkdir(folderPath, 0755)
	}

	dir, _ := os.Getwd()
	candidate := filepath.Join(dir, filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	if err := os.Mkdir(candidate, 0755); err == nil {
		return candidate, nil
	}

	candidate = filepath.Join(os.TempDir(), filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	return candidate, os.Mkdir(candidate, 0755)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		if pathDebug {
			log.Println("stat failed for", filename, err)
		}
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(foldername string) bool {
	info, err := os.Stat(foldername)
	if err != nil {
		if pathDebug {
			log.Println("stat failed for", foldername, err)
		}
		return false
	}
	return info.IsDir()
}
