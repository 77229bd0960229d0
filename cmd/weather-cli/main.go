package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"weather-app/internal/application/handler"
	"weather-app/internal/application/view"
	"weather-app/internal/domain/gateway/api"
	"weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// cliConfig is the resolved flag and WEATHER_* environment configuration
type cliConfig struct {
	Server  string
	City    string
	OneShot bool
	Timeout time.Duration
	Verbose bool
}

func main() {
	config, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.SetOutput(zapcore.AddSync(os.Stderr))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// a blocked read on stdin does not see the context, so closing stdin ends the prompt loop
	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	os.Exit(run(ctx, config, os.Stdin, os.Stdout))
}

func loadConfig(args []string) (cliConfig, error) {
	flags := pflag.NewFlagSet("weather-cli", pflag.ContinueOnError)
	flags.String("server", "http://localhost:8080", "base URL of the weather service")
	flags.String("city", "", "fetch the weather of one city and exit")
	flags.Duration("timeout", 60*time.Second, "read timeout of the request")
	flags.Bool("verbose", false, "log outbound requests to stderr")
	if err := flags.Parse(args); err != nil {
		return cliConfig{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("WEATHER")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return cliConfig{}, err
	}

	return cliConfig{
		Server:  v.GetString("server"),
		City:    v.GetString("city"),
		OneShot: v.GetString("city") != "" || flags.Changed("city"),
		Timeout: v.GetDuration("timeout"),
		Verbose: v.GetBool("verbose"),
	}, nil
}

// run drives the handler from one --city value or from the lines of in, and returns the exit status
func run(ctx context.Context, config cliConfig, in io.Reader, out io.Writer) int {
	options := http.ClientOptions{ReadTimeout: config.Timeout}
	if config.Verbose {
		options.Logger = http.NewZapLogger("weather-service")
	}

	terminal := view.NewTerminal(out)
	requestHandler := handler.NewWeatherRequestHandler(api.NewWeatherServiceGateway(config.Server, options), terminal)

	if config.OneShot {
		terminal.CityInput = config.City
		if err := requestHandler.Fetch(ctx, terminal.CityInput); err != nil {
			return 1
		}
		return 0
	}

	exitCommand := msg.GetMessage("cli.exit-command")
	scanner := bufio.NewScanner(in)
	for ctx.Err() == nil && terminal.Prompt(scanner) {
		if strings.EqualFold(strings.TrimSpace(terminal.CityInput), exitCommand) {
			break
		}
		_ = requestHandler.Fetch(ctx, terminal.CityInput)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, msg.GetMessage("cli.bye"))
	return 0
}
