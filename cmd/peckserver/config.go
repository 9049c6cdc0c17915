package main

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind      string
	port      int
	root      string
	manifest  string
	publicURL string
	timeout   time.Duration
	metrics   bool
	verbose   bool
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.root == "" {
		return errors.New("--root must not be empty")
	}
	if c.timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.timeout)
	}
	return nil
}

// joinURL is the address encoded in the QR code.
func (c *Config) joinURL() string {
	if c.publicURL != "" {
		return strings.TrimSuffix(c.publicURL, "/") + "/"
	}
	host := c.bind
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = outboundIP()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.port)) + "/"
}

// outboundIP finds the LAN address other devices can reach. No packets are
// sent; dialing UDP only picks a route.
func outboundIP() string {
	conn, err := net.Dial("udp", "192.0.2.1:80")
	if err != nil {
		return "localhost"
	}
	defer conn.Close()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "localhost"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PECKSERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "peckserver",
		Short:         "Serves the Pecking Order web build with an offline asset cache.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return Serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: PECKSERVER_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: PECKSERVER_PORT)")
	fs.StringVarP(&cfg.root, "root", "r", "web", "directory holding the web build (env: PECKSERVER_ROOT)")
	fs.StringVar(&cfg.manifest, "manifest", "", "cache manifest to use instead of the built-in one (env: PECKSERVER_MANIFEST)")
	fs.StringVar(&cfg.publicURL, "public-url", "", "URL shown in the join QR code (env: PECKSERVER_PUBLIC_URL)")
	fs.DurationVar(&cfg.timeout, "timeout", 10*time.Second, "read and write timeout (env: PECKSERVER_TIMEOUT)")
	fs.BoolVar(&cfg.metrics, "metrics", true, "expose prometheus metrics on /metrics (env: PECKSERVER_METRICS)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: PECKSERVER_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("peckserver v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
