package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/latency-testnet/common"
	"github.com/latency-testnet/config"
	"github.com/latency-testnet/hosts"
	"github.com/latency-testnet/metric"
	"github.com/latency-testnet/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
)

// Command line parameters
var (
	templatePath string
	topologyPath string
	checkYAML    bool
	summary      bool
	logLevel     string
)

func init() {
	flag.StringVarP(&templatePath, "template", "t", "", "Compose template, "+common.TemplateName+" if not set")
	flag.StringVarP(&topologyPath, "topology", "f", "", "Topology file (.json, .yaml), built-in table if not set")
	flag.BoolVarP(&checkYAML, "check", "", false, "Fail if the rendered output is not valid YAML")
	flag.BoolVarP(&summary, "summary", "", false, "Write a per-latency CSV summary to stderr")
	flag.StringVarP(&logLevel, "log-level", "", common.DefaultLogLevel, "Log level")

	flag.Usage = func() {
		usage(os.Stderr, os.Args[0])
		flag.PrintDefaults()
	}
}

func usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s [options] > docker-compose.yaml\n", name)
	fmt.Fprintf(w, "With no options, renders ./%s with the built-in latency table.\n", common.TemplateName)
}

type options struct {
	template string
	topology string
	check    bool
	summary  bool
}

// run renders the compose document and writes it to stdout. Nothing reaches
// stdout unless every step succeeded.
func run(logger *log.Entry, fs afero.Fs, opts options, stdout, stderr io.Writer) error {
	topology := config.DefaultTopology()
	if opts.topology != "" {
		t, err := config.LoadTopology(fs, opts.topology)
		if err != nil {
			return err
		}
		topology = t
	}

	nodes := hosts.Build(topology)
	logger.Debugf("Built %d hosts from %d latency classes", len(nodes), len(topology))

	r := render.New(fs, opts.template)
	logger.Debugf("Rendering %s", r.Path())
	out, err := r.Render(nodes)
	if err != nil {
		return err
	}
	if opts.check {
		if err := render.CheckYAML(out); err != nil {
			return err
		}
	}

	if opts.summary {
		if err := metric.WriteCSV(stderr, metric.Summarize(nodes)); err != nil {
			return err
		}
	}
	return render.Emit(stdout, out)
}

func main() {
	_ = godotenv.Load()
	flag.Parse()

	logger, err := common.NewLogger(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.WithField("component", "composegen")

	opts := options{
		template: templatePath,
		topology: topologyPath,
		check:    checkYAML,
		summary:  summary,
	}
	if opts.template == "" {
		opts.template = common.Getenv("COMPOSEGEN_TEMPLATE", common.TemplateName)
	}

	if err := run(log, afero.NewOsFs(), opts, os.Stdout, os.Stderr); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}
