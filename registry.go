package aoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/exp/maps"
)

// DefaultInputDir is where RunAll and RunDayFile look for day<N>.txt.
const DefaultInputDir = "inputs"

// Day pairs a day number with the func that runs it.
type Day struct {
	Num int
	Run RunFunc
}

// Registry maps day numbers to their solutions. It is built once with New
// and not modified afterwards.
type Registry struct {
	days     map[int]RunFunc
	out      io.Writer
	fs       afero.Fs
	inputDir string
}

// Option configures a Registry.
type Option func(*Registry)

// WithOutput sets where results are written. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) { r.out = w }
}

// WithFs sets the filesystem inputs are read from. The default is the OS
// filesystem.
func WithFs(fs afero.Fs) Option {
	return func(r *Registry) { r.fs = fs }
}

// WithInputDir sets the directory default input paths are relative to.
func WithInputDir(dir string) Option {
	return func(r *Registry) { r.inputDir = dir }
}

// New returns a Registry holding days. If a day number appears more than
// once, the last entry wins.
func New(days []Day, opts ...Option) *Registry {
	r := &Registry{
		days:     make(map[int]RunFunc, len(days)),
		out:      os.Stdout,
		fs:       afero.NewOsFs(),
		inputDir: DefaultInputDir,
	}
	for _, o := range opts {
		o(r)
	}
	for _, d := range days {
		if _, ok := r.days[d.Num]; ok {
			log.Debug().Int("day", d.Num).Msg("replacing earlier registration")
		}
		r.days[d.Num] = d.Run
	}
	return r
}

// AvailableDays returns the registered day numbers in ascending order.
func (r *Registry) AvailableDays() []int {
	days := maps.Keys(r.days)
	slices.Sort(days)
	return days
}

// InputPath returns the default input path for day.
func (r *Registry) InputPath(day int) string {
	return filepath.Join(r.inputDir, fmt.Sprintf("day%d.txt", day))
}

// RunDay runs day against in. It returns a *LookupError, without reading
// in, if day isn't registered.
func (r *Registry) RunDay(day int, in io.Reader, timing bool) error {
	fn, ok := r.days[day]
	if !ok {
		return &LookupError{Day: day}
	}
	log.Debug().Int("day", day).Bool("timing", timing).Msg("running day")
	return fn(r.out, in, timing)
}

// RunDayFile runs day against the file at path, or against the day's
// default input if path is empty. The file is closed before returning.
func (r *Registry) RunDayFile(day int, path string, timing bool) error {
	if _, ok := r.days[day]; !ok {
		return &LookupError{Day: day}
	}
	if path == "" {
		path = r.InputPath(day)
	}
	f, err := r.fs.Open(path)
	if err != nil {
		return &ResourceError{Path: path, Err: err}
	}
	defer f.Close()
	log.Trace().Str("path", path).Msg("opened input")
	err = r.RunDay(day, f, timing)
	var re *ResourceError
	if errors.As(err, &re) && re.Path == "" {
		re.Path = path
	}
	return err
}

// RunAll runs every registered day in ascending order using each day's
// default input. It stops at the first error.
func (r *Registry) RunAll(timing bool) error {
	for _, day := range r.AvailableDays() {
		if _, err := fmt.Fprintf(r.out, "\nDay %d\n", day); err != nil {
			return err
		}
		if err := r.RunDayFile(day, "", timing); err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
	}
	return nil
}
