package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"move-emitter/bench"
	"move-emitter/configs"
	"move-emitter/core"
)

// generateCmd represents the command provider for transaction generation
var generateCmd = &cobra.Command{
	Use:           "generate",
	Short:         "Generates signed transactions for a workload",
	Long:          `Loads the configuration, accounts and packages, then writes the signed transactions of the configured workload to a file`,
	Args:          cobra.NoArgs,
	RunE:          cmdRunGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addGenerateFlags()
	rootCmd.AddCommand(generateCmd)
}

// addGenerateFlags adds the various flags for the generate command
func addGenerateFlags() {
	generateCmd.Flags().SortFlags = false

	generateCmd.Flags().StringP("config", "c", "emitter.yaml", "path to config file")
	generateCmd.Flags().StringP("output", "o", "transactions.bin", "path of the transaction file to write")
	generateCmd.Flags().String("workload", "", "workload to generate (overrides the config file)")
	generateCmd.Flags().Int64("seed", 0, "master seed (overrides the config file, 0 keeps it)")
	generateCmd.Flags().Int("workers", 0, "number of concurrent generators (overrides the config file)")
	generateCmd.Flags().String("sync", "", "node endpoint to read account sequence numbers from before generating")
	generateCmd.Flags().String("metrics", "", "path of a prometheus text file to write the run metrics to")

	addVerbosityFlags(generateCmd)
}

// updateConfigWithGenerateFlags overrides the config fields whose flag was set
func updateConfigWithGenerateFlags(command *cobra.Command, config *configs.EmitterConfig) error {
	var err error

	if command.Flags().Changed("workload") {
		config.Workload.Name, err = command.Flags().GetString("workload")
		if err != nil {
			return err
		}
	}

	if command.Flags().Changed("seed") {
		config.Workload.Seed, err = command.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
	}

	if command.Flags().Changed("workers") {
		config.Workload.Workers, err = command.Flags().GetInt("workers")
		if err != nil {
			return err
		}
	}

	return nil
}

// cmdRunGenerate executes the generate command
func cmdRunGenerate(command *cobra.Command, args []string) error {
	logger, err := setupLogger(command)
	if err != nil {
		return err
	}

	configPath, err := command.Flags().GetString("config")
	if err != nil {
		return err
	}

	config, err := configs.ParseEmitterConfig(configPath)
	if err != nil {
		return fmt.Errorf("cannot parse config '%s': %w", configPath, err)
	}

	err = updateConfigWithGenerateFlags(command, config)
	if err != nil {
		return err
	}

	err = config.Validate()
	if err != nil {
		return fmt.Errorf("invalid config '%s': %w", configPath, err)
	}

	registry := prometheus.NewRegistry()
	run, err := bench.Setup(config, logger, core.NewMetrics(registry))
	if err != nil {
		return err
	}

	endpoint, err := command.Flags().GetString("sync")
	if err != nil {
		return err
	}
	if endpoint != "" {
		reader := bench.NewAccountReader(config.Chain.Id, endpoint)
		err = bench.SyncSequenceNumbers(logger.Extend("sync"), reader, run.Accounts)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	txs, err := run.Runner.Run(ctx, run.Accounts)
	if err != nil {
		return err
	}

	output, err := command.Flags().GetString("output")
	if err != nil {
		return err
	}

	err = bench.WriteTransactions(output, txs)
	if err != nil {
		return fmt.Errorf("cannot write '%s': %w", output, err)
	}

	logger.Infof("wrote %d transactions in '%s'", len(txs), output)

	metricsPath, err := command.Flags().GetString("metrics")
	if err != nil {
		return err
	}
	if metricsPath != "" {
		err = prometheus.WriteToTextfile(metricsPath, registry)
		if err != nil {
			return fmt.Errorf("cannot write metrics '%s': %w", metricsPath, err)
		}
		logger.Infof("wrote metrics in '%s'", metricsPath)
	}

	return nil
}
