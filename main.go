// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Algebra simplifies symbolic mathematical expressions by best-first
// search over a library of algebraic rewrite rules.
//
// With an expression argument it simplifies once and exits; without one
// it reads expressions from standard input, one per line.
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Qartar/algebra/config"
	"github.com/Qartar/algebra/rewrite"
	"github.com/Qartar/algebra/run"
)

var rootCmd = &cobra.Command{
	Use:   "algebra [expression]",
	Short: "Simplify symbolic algebraic expressions.",
	Long: "Algebra searches the space of expressions reachable via algebraic\n" +
		"rewrite rules and reports the smallest form found within its budgets,\n" +
		"along with the derivation path that produced it.",
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		if rules, _ := cmd.Flags().GetBool("rules"); rules {
			for _, r := range rewrite.Rules() {
				fmt.Printf("%s = %s\n", r.Source, r.Target)
			}
			return
		}

		var conf config.Config
		maxOps, _ := cmd.Flags().GetInt("max-ops")
		maxIters, _ := cmd.Flags().GetInt("max-iters")
		prompt, _ := cmd.Flags().GetString("prompt")
		conf.SetMaxOps(maxOps)
		conf.SetMaxIters(maxIters)
		conf.SetPrompt(prompt)

		if len(args) > 0 {
			run.Line(&conf, strings.Join(args, " "))
			return
		}
		conf.SetInteractive(term.IsTerminal(int(os.Stdin.Fd())))
		run.Run(&conf, os.Stdin)
	},
}

func init() {
	rootCmd.Flags().Int("max-ops", 32, "stop expanding expressions at least this large; 0 for unbounded")
	rootCmd.Flags().Int("max-iters", 256, "maximum search iterations; 0 for unbounded")
	rootCmd.Flags().String("prompt", "> ", "interactive prompt")
	rootCmd.Flags().Bool("rules", false, "print the rewrite rule table and exit")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
