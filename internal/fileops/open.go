package fileops

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

var (
	ErrNoAppsFound         = errors.New("no apps found")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrNoExecutableFound   = errors.New("no executable found")
	ErrNoExecLine          = errors.New("no exec line")
	ErrFileNotFound        = errors.New("file does not exist")
)

// queryTimeout bounds the helper commands used to list candidate apps.
const queryTimeout = 2 * time.Second

// Opener launches external applications for paths.
type Opener interface {
	// OpenDefault opens path with the platform's default application.
	OpenDefault(path string) error
	// Candidates lists applications that can open path.
	Candidates(path string) ([]string, error)
	// OpenWith opens path with one of the names returned by Candidates.
	OpenWith(app, path string) error
}

// runFunc runs a command and returns its standard output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// startFunc starts a detached command without waiting for it.
type startFunc func(name string, args ...string) error

// System implements Opener with the platform's command line tools.
type System struct {
	goos     string
	run      runFunc
	start    startFunc
	dataDirs []string // Where .desktop files are searched on Linux
}

// NewSystem creates an opener for the running platform.
func NewSystem() *System {
	return &System{
		goos:     runtime.GOOS,
		run:      runCommand,
		start:    startCommand,
		dataDirs: xdgDataDirs(),
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func startCommand(name string, args ...string) error {
	// Standard streams stay nil so the child never draws over the UI
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenDefault opens path with xdg-open or open.
func (s *System) OpenDefault(path string) error {
	switch s.goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return s.start("xdg-open", path)
	case "darwin":
		return s.start("open", path)
	default:
		return ErrUnsupportedPlatform
	}
}

// Candidates asks the desktop for applications registered for path's type.
func (s *System) Candidates(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ErrFileNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	switch s.goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return s.linuxCandidates(ctx, path)
	case "darwin":
		return s.darwinCandidates(ctx, path)
	default:
		return nil, ErrUnsupportedPlatform
	}
}

func (s *System) linuxCandidates(ctx context.Context, path string) ([]string, error) {
	out, err := s.run(ctx, "xdg-mime", "query", "filetype", path)
	if err != nil {
		return nil, fmt.Errorf("query mime type: %w", err)
	}
	mime := strings.TrimSpace(string(out))

	out, err = s.run(ctx, "gio", "mime", mime)
	if err != nil {
		return nil, fmt.Errorf("query apps for %s: %w", mime, err)
	}

	return uniqueSorted(parseGioMime(string(out))), nil
}

// parseGioMime extracts .desktop ids from `gio mime` output.
func parseGioMime(out string) []string {
	var apps []string
	for _, line := range strings.Split(out, "\n") {
		for _, word := range strings.Fields(line) {
			if strings.HasSuffix(word, ".desktop") {
				apps = append(apps, word)
			}
		}
	}
	return apps
}

func (s *System) darwinCandidates(ctx context.Context, path string) ([]string, error) {
	out, err := s.run(ctx, "mdls", "-name", "kMDItemContentType", path)
	if err != nil {
		return nil, fmt.Errorf("query content type: %w", err)
	}
	uti := parseMdls(string(out))
	if uti == "" {
		return nil, errors.New("could not determine content type")
	}

	out, err = s.run(ctx, "mdfind", fmt.Sprintf("kMDItemContentTypeTree == '%s'", uti))
	if err != nil {
		return nil, fmt.Errorf("query apps for %s: %w", uti, err)
	}

	var apps []string
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "/Applications/") {
			apps = append(apps, filepath.Base(strings.TrimSpace(line)))
		}
	}
	return uniqueSorted(apps), nil
}

// parseMdls reads the value of `kMDItemContentType = "..."`.
func parseMdls(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "kMDItemContentType") {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`)
	}
	return ""
}

// OpenWith launches app for path. On Linux app is a .desktop id whose
// Exec line is resolved; on macOS it is an application bundle name.
func (s *System) OpenWith(app, path string) error {
	switch s.goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		argv, err := s.desktopCommand(app, path)
		if err != nil {
			return err
		}
		return s.start(argv[0], argv[1:]...)
	case "darwin":
		return s.start("open", "-a", app, path)
	default:
		return ErrUnsupportedPlatform
	}
}

// desktopCommand builds the argv for a .desktop file's Exec line.
func (s *System) desktopCommand(app, path string) ([]string, error) {
	for _, dir := range s.dataDirs {
		f, err := os.Open(filepath.Join(dir, "applications", app))
		if err != nil {
			continue
		}
		line, found := readExecLine(f)
		f.Close()
		if !found {
			return nil, ErrNoExecLine
		}
		return expandExec(line, path)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoExecutableFound, app)
}

func readExecLine(f *os.File) (string, bool) {
	sc := bufio.NewScanner(f)
	inEntry := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if inEntry && strings.HasPrefix(line, "Exec=") {
			return strings.TrimPrefix(line, "Exec="), true
		}
	}
	return "", false
}

// expandExec substitutes the file field codes of an Exec line with path
// and drops the others. Without a file code, path is appended.
func expandExec(line, path string) ([]string, error) {
	var argv []string
	substituted := false
	for _, field := range strings.Fields(line) {
		switch field {
		case "%f", "%F", "%u", "%U":
			argv = append(argv, path)
			substituted = true
		case "%i", "%c", "%k", "%d", "%D", "%n", "%N", "%v", "%m":
		default:
			argv = append(argv, strings.Trim(field, `"`))
		}
	}
	if len(argv) == 0 {
		return nil, ErrNoExecLine
	}
	if !substituted {
		argv = append(argv, path)
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoExecutableFound, argv[0])
	}
	argv[0] = bin
	return argv, nil
}

func xdgDataDirs() []string {
	var dirs []string
	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		dirs = append(dirs, home)
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share"))
	}

	system := os.Getenv("XDG_DATA_DIRS")
	if system == "" {
		system = "/usr/local/share:/usr/share"
	}
	return append(dirs, filepath.SplitList(system)...)
}

func uniqueSorted(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
