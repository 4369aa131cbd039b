// Command envfile inspects and edits KEY=VALUE configuration files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Azhovan/envfile"
)

var version = "0.1.0"

func main() {
	var (
		file      string
		delimiter string
	)

	options := func() envfile.Options {
		opts := envfile.Options{}
		if delimiter != "" {
			opts.Delimiter = []rune(delimiter)[0]
		}
		return opts
	}

	root := &cobra.Command{
		Use:   "envfile",
		Short: "envfile - typed env-file inspection and editing",
		Long: `envfile reads and writes KEY=VALUE configuration files with typed values.
Lookups fall back to the process environment when a key is missing from the file.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", ".env", "env file to operate on")
	root.PersistentFlags().StringVarP(&delimiter, "delimiter", "d", "=", "key-value delimiter")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("envfile v%s\n", version)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: "Print the value a key resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envfile.Load(file, options())
			if err != nil {
				return err
			}
			value, source, ok := env.Resolve(args[0])
			if !ok {
				return fmt.Errorf("key %q not found in %s or the process environment", args[0], file)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%s, source: %s)\n", value, value.Kind(), source)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a key in the file, creating the file if needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envfile.Load(file, options())
			if err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					return err
				}
				env = envfile.New(options())
			}
			value := envfile.Infer(args[1])
			env.Set(args[0], &value, true)
			return env.Save(file)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a key from the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envfile.Load(file, options())
			if err != nil {
				return err
			}
			if removed, ok := env.Remove(args[0]); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s=%s\n", args[0], removed)
			}
			return env.Save(file)
		},
	})

	var (
		format      string
		withSources bool
	)
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print all entries as they currently resolve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envfile.Load(file, options())
			if err != nil {
				return err
			}

			var opts []envfile.DumpOption
			switch format {
			case "text":
			case "json":
				opts = append(opts, envfile.AsJSON())
			case "yaml":
				opts = append(opts, envfile.AsYAML())
			case "toml":
				opts = append(opts, envfile.AsTOML())
			default:
				return fmt.Errorf("unsupported format %q (supported: text, json, yaml, toml)", format)
			}
			if withSources {
				opts = append(opts, envfile.WithSources())
			}
			return env.Dump(cmd.OutOrStdout(), opts...)
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", "text", "output format: text, json, yaml, toml")
	dumpCmd.Flags().BoolVar(&withSources, "sources", false, "show which source each key resolved from")
	root.AddCommand(dumpCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
