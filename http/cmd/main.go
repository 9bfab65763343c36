package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/latency-testnet/common"
	httpd "github.com/latency-testnet/http"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
)

// Command line parameters
var (
	dir      string
	bindHost string
	logLevel string
)

func init() {
	flag.StringVarP(&dir, "dir", "d", ".", "Directory to serve")
	flag.StringVarP(&bindHost, "bind", "b", "", "Bind host, all interfaces if not set")
	flag.StringVarP(&logLevel, "log-level", "", common.DefaultLogLevel, "Log level")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [port]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	_ = godotenv.Load()
	flag.Parse()

	port, err := parsePort(flag.Args(), common.Getenv("SERVE_PORT", strconv.Itoa(common.DefaultServePort)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	logger, err := common.NewLogger(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.WithField("component", "main")

	s := httpd.NewService(logger, net.JoinHostPort(bindHost, strconv.Itoa(port)), afero.NewOsFs(), dir)
	if err := s.Start(); err != nil {
		log.Fatalf("Unable to start HTTP service: %s", err)
	}

	host := bindHost
	if host == "" {
		host = "0.0.0.0"
	}
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "Serving HTTP on %s port %d (http://%s/) ...\n",
		host, port, net.JoinHostPort(host, strconv.Itoa(port)))

	terminate := make(chan os.Signal, 1)
	signal.Notify(terminate, os.Interrupt)
	<-terminate
	log.Info("Keyboard interrupt received, exiting")
	if err := s.Close(); err != nil {
		log.Errorf("Unable to close listener: %s", err)
	}
}

// parsePort returns the port named by the first positional argument, or def
// when there is none.
func parsePort(args []string, def string) (int, error) {
	arg := def
	if len(args) > 0 {
		arg = args[0]
	}
	port, err := strconv.Atoi(arg)
	if err != nil || port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid port %q", arg)
	}
	return port, nil
}
