// Package config loads ropesim settings from an INI file.
//
//	[rope]
//	knots = 2,10
//
//	[feed]
//	input = s3://bucket/day9.txt
//
//	[aws]
//	credentials = /home/me/.aws/credentials
//	profile = default
//	region = us-west-2
//
//	[repl]
//	history = /tmp/ropesim_history
//
//	[watch]
//	delay = 50ms
//
// Keys that are absent keep their default values.
package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vaughan0/go-ini"
)

type Config struct {
	Knots       []int  // rope lengths to simulate
	Input       string // "-", a file path, or s3://bucket/key
	AWS         AWS
	HistoryFile string
	WatchDelay  time.Duration
}

type AWS struct {
	CredentialsFile string
	ConfigFile      string
	Profile         string
	Region          string
}

func Default() *Config {
	c := &Config{
		Knots:       []int{2, 10},
		Input:       "-",
		HistoryFile: filepath.Join(os.TempDir(), "ropesim_history"),
		WatchDelay:  50 * time.Millisecond,
		AWS:         AWS{Profile: "default"},
	}
	if home := homeDir(); home != "" {
		c.AWS.CredentialsFile = filepath.Join(home, ".aws", "credentials")
		c.AWS.ConfigFile = filepath.Join(home, ".aws", "config")
	}
	return c
}

func homeDir() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.HomeDir
}

// Load reads the INI file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	f, err := ini.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if err := c.apply(f); err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return c, nil
}

func (c *Config) apply(f ini.File) error {
	if v, ok := f.Get("rope", "knots"); ok {
		knots, err := ParseKnots(v)
		if err != nil {
			return err
		}
		c.Knots = knots
	}
	if v, ok := f.Get("feed", "input"); ok {
		c.Input = v
	}
	aws := f.Section("aws")
	if v, ok := aws["credentials"]; ok {
		c.AWS.CredentialsFile = v
	}
	if v, ok := aws["config"]; ok {
		c.AWS.ConfigFile = v
	}
	if v, ok := aws["profile"]; ok {
		c.AWS.Profile = v
	}
	if v, ok := aws["region"]; ok {
		c.AWS.Region = v
	}
	if v, ok := f.Get("repl", "history"); ok {
		c.HistoryFile = v
	}
	if v, ok := f.Get("watch", "delay"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("[watch] delay: %s", err)
		}
		if d < 0 {
			return fmt.Errorf("[watch] delay must not be negative")
		}
		c.WatchDelay = d
	}
	return nil
}

// ParseKnots parses a comma-separated list of rope lengths, such as "2,10".
func ParseKnots(s string) ([]int, error) {
	var knots []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad knot count %q", field)
		}
		if n < 2 {
			return nil, fmt.Errorf("knot count must be at least 2, got %d", n)
		}
		knots = append(knots, n)
	}
	if len(knots) == 0 {
		return nil, fmt.Errorf("no knot counts in %q", s)
	}
	return knots, nil
}

// SharedRegion returns the configured AWS region, falling back to the
// region of the profile in the shared AWS config file.
func (c *Config) SharedRegion() (string, error) {
	if c.AWS.Region != "" {
		return c.AWS.Region, nil
	}
	if c.AWS.ConfigFile == "" {
		return "", fmt.Errorf("no AWS region configured")
	}
	f, err := ini.LoadFile(c.AWS.ConfigFile)
	if err != nil {
		return "", fmt.Errorf("error loading aws config (%s): %s", c.AWS.ConfigFile, err)
	}
	section := c.AWS.Profile
	if section != "default" {
		section = "profile " + section
	}
	region, ok := f.Get(section, "region")
	if !ok || region == "" {
		return "", fmt.Errorf("no region for %q in %s", section, c.AWS.ConfigFile)
	}
	return region, nil
}
