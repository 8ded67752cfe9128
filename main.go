package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/theory/config"
	"github.com/robmorgan/theory/interval"
	"github.com/robmorgan/theory/logger"
	"github.com/robmorgan/theory/names"
	"github.com/robmorgan/theory/pitch"
	"github.com/sirupsen/logrus"
)

const (
	modeAuto       = "auto"
	modeInterval   = "interval"
	modePitch      = "pitch"
	modePitchClass = "pitch-class"
)

func main() {
	if err := Run(os.Args[1:], os.Stdout); err != nil {
		logger := logger.GetProjectLogger()
		logger.Debug(errors.PrintErrorWithStackTrace(err))
		logger.Fatalf("error: %v", err)
	}
}

// Run parses each argument as an interval, pitch class or pitch and writes its numeric form to out.
func Run(args []string, out io.Writer) error {
	// initiailze the global config
	cfg, err := config.NewTheoryConfig()
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("theory", flag.ContinueOnError)
	flags.SetOutput(out)
	verbose := flags.Bool("v", false, "enable debug logging")
	spelling := flags.String("spelling", "default", "pitch class spelling: default, sharp or flat")
	mode := flags.String("as", modeAuto, "read arguments as auto, interval, pitch or pitch-class")
	transpose := flags.String("transpose", "", "transpose pitches and pitch classes by this interval")
	if err := flags.Parse(args); err != nil {
		return errors.WithStackTrace(err)
	}

	if *verbose {
		cfg.LogLevel = logrus.DebugLevel
	}
	if cfg.Spelling, err = names.ParseSpelling(*spelling); err != nil {
		return err
	}
	cfg.Apply()

	var by *interval.Interval
	if *transpose != "" {
		i, err := interval.Parse(*transpose)
		if err != nil {
			return err
		}
		by = &i
	}

	for _, arg := range flags.Args() {
		line, err := describe(cfg, *mode, arg, by)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// describe tries, in auto mode, interval then pitch class then pitch. "A4"
// therefore reads as an augmented fourth unless -as pitch is given.
func describe(cfg config.TheoryConfig, mode, arg string, by *interval.Interval) (string, error) {
	switch mode {
	case modeInterval:
		return describeInterval(arg)
	case modePitchClass:
		return describePitchClass(cfg, arg, by)
	case modePitch:
		return describePitch(cfg, arg, by)
	case modeAuto:
		for _, fn := range []func() (string, error){
			func() (string, error) { return describeInterval(arg) },
			func() (string, error) { return describePitchClass(cfg, arg, by) },
			func() (string, error) { return describePitch(cfg, arg, by) },
		} {
			if line, err := fn(); err == nil {
				return line, nil
			}
		}
		cfg.Logger.WithFields(logrus.Fields{"arg": arg}).Debug("No parser accepted the argument")
		return "", errors.WithStackTrace(fmt.Errorf("%q is not an interval, pitch class or pitch", arg))
	}
	return "", errors.WithStackTrace(fmt.Errorf("unknown mode %q", mode))
}

func describeInterval(arg string) (string, error) {
	i, err := interval.Parse(arg)
	if err != nil {
		return "", err
	}
	degree, quality := "-", "-"
	if d, ok := i.Degree(); ok {
		degree = fmt.Sprint(d)
	}
	if q, ok := i.Quality(); ok {
		quality = q.Name()
	}
	return fmt.Sprintf("%s: interval degree=%s quality=%s semitones=%d", arg, degree, quality, i.Semitones()), nil
}

func describePitchClass(cfg config.TheoryConfig, arg string, by *interval.Interval) (string, error) {
	pc, err := pitch.ParsePitchClass(arg)
	if err != nil {
		return "", err
	}
	if by != nil {
		pc = pc.Add(*by)
	}
	return fmt.Sprintf("%s: pitch-class name=%s semitones=%d color=%s",
		arg, pc.SpelledName(cfg.Spelling), pc.Semitones(), pc.Color().Hex()), nil
}

func describePitch(cfg config.TheoryConfig, arg string, by *interval.Interval) (string, error) {
	p, err := pitch.Parse(arg)
	if err != nil {
		return "", err
	}
	if by != nil {
		p = p.Add(*by)
	}
	pc := p.PitchClass()
	fields := []string{
		fmt.Sprintf("name=%s", p.Name()),
		fmt.Sprintf("midi=%d", p.MidiNumber()),
		fmt.Sprintf("helmholtz=%s", p.Helmholtz()),
		fmt.Sprintf("pitch-class=%s", pc.SpelledName(cfg.Spelling)),
	}
	return fmt.Sprintf("%s: pitch %s", arg, strings.Join(fields, " ")), nil
}
