// Package lister lists the entry names stored in jar/zip archives.
//
// Listing is delegated to whichever capability is available, probed once at
// startup in priority order:
//
//  1. zipinfo -1 ARCHIVE
//  2. unzip -Z1 ARCHIVE
//  3. jar tf ARCHIVE (jar on PATH, otherwise $JAVA_HOME/bin/jar)
//
// An in-process lister backed by github.com/mholt/archives can be selected
// explicitly; it is never chosen by probing.
package lister

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/harrison/find-in-jars/internal/config"
)

// ErrNoLister is returned when no listing capability can be found
var ErrNoLister = errors.New("no entry listing tool found: install zipinfo/unzip, put jar on PATH or set JAVA_HOME")

// Lister produces the entry names of an archive
type Lister interface {
	// Name identifies the capability (zipinfo, unzip, jar, builtin)
	Name() string

	// ListEntries returns the entry names of the archive at path, in archive order.
	// A *ListWarning error comes with a complete, usable entry list.
	ListEntries(ctx context.Context, path string) ([]string, error)
}

// Environment abstracts the lookups used to probe for listing tools
type Environment struct {
	// LookPath resolves an executable name on the search path
	LookPath func(file string) (string, error)
	// Getenv reads an environment variable
	Getenv func(key string) string
	// Stat inspects a file
	Stat func(name string) (os.FileInfo, error)
}

// SystemEnvironment returns an Environment backed by the running process
func SystemEnvironment() Environment {
	return Environment{
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
		Stat:     os.Stat,
	}
}

// Select returns the lister named by choice. config.ListerAuto probes
// zipinfo, unzip and jar in that order.
// Returns ErrNoLister (wrapped) when the requested capability is unavailable.
func Select(choice string, env Environment) (Lister, error) {
	switch choice {
	case config.ListerAuto, "":
		return Detect(env)
	case config.ListerZipinfo:
		return lookupCommand(env, "zipinfo", NewZipinfoLister)
	case config.ListerUnzip:
		return lookupCommand(env, "unzip", NewUnzipLister)
	case config.ListerJar:
		path, err := findJar(env)
		if err != nil {
			return nil, err
		}
		return NewJarLister(path), nil
	case config.ListerBuiltin:
		return NewBuiltinLister(), nil
	default:
		return nil, fmt.Errorf("unknown lister %q", choice)
	}
}

// Detect probes the listing capabilities in priority order
func Detect(env Environment) (Lister, error) {
	if path, err := env.LookPath("zipinfo"); err == nil {
		return NewZipinfoLister(path), nil
	}
	if path, err := env.LookPath("unzip"); err == nil {
		return NewUnzipLister(path), nil
	}
	path, err := findJar(env)
	if err != nil {
		return nil, err
	}
	return NewJarLister(path), nil
}

func lookupCommand(env Environment, name string, build func(string) *CommandLister) (Lister, error) {
	path, err := env.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found on PATH", ErrNoLister, name)
	}
	return build(path), nil
}

// findJar resolves the jar tool from PATH, then from $JAVA_HOME/bin
func findJar(env Environment) (string, error) {
	if path, err := env.LookPath("jar"); err == nil {
		return path, nil
	}

	javaHome := env.Getenv("JAVA_HOME")
	if javaHome == "" {
		return "", ErrNoLister
	}

	name := "jar"
	if runtime.GOOS == "windows" {
		name = "jar.exe"
	}
	path := filepath.Join(javaHome, "bin", name)

	info, err := env.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s does not exist", ErrNoLister, path)
	}
	if runtime.GOOS != "windows" && info.Mode()&0111 == 0 {
		return "", fmt.Errorf("%w: %s is not executable", ErrNoLister, path)
	}

	return path, nil
}
