package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"email-triage/internal/di"
	"email-triage/internal/domain/entity"
	"email-triage/internal/infrastructure/config"
	"email-triage/internal/infrastructure/env"
)

func main() {
	filePath := flag.String("file", "", "read the email from a file instead of arguments/stdin")
	flag.Parse()

	envService := env.NewService()
	cfg, err := config.Load(envService)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	emailText, err := readEmailText(*filePath, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		os.Exit(1)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialization error: %v\n", err)
		os.Exit(1)
	}
	defer container.Close()

	// Leave headroom over the HTTP client timeout so the transport error
	// surfaces before the context does.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout()+5*time.Second)
	defer cancel()

	result, err := container.Classifier.Classify(ctx, entity.Email{Text: emailText})
	if err != nil {
		container.Logger.Error("Classification failed", "error", err)
		fmt.Fprintf(os.Stderr, "classification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.Category)
}

func readEmailText(filePath string, args []string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
