package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Olga-Zydziak/pdf-generator/internal/config"
	"github.com/Olga-Zydziak/pdf-generator/internal/domain"
	"github.com/Olga-Zydziak/pdf-generator/internal/generator"
	"github.com/Olga-Zydziak/pdf-generator/internal/pdf"
	"github.com/Olga-Zydziak/pdf-generator/internal/storage"
	"github.com/Olga-Zydziak/pdf-generator/internal/template"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pdfgen",
		Short: "Generate synthetic PDF documents for knowledge base training",
	}
	cfgPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "Path to the application config file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(domainsCmd)

	generateCmd.Flags().StringVarP(&genDomain, "domain", "d", "", "Domain to use (e.g. banking)")
	generateCmd.Flags().IntVarP(&genCount, "count", "c", 100, "Number of PDFs to generate (1-10000)")
	generateCmd.Flags().StringVarP(&genMix, "lang-mix", "l", "pl:70,en:30", "Language distribution (e.g. 'pl:70,en:30')")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output directory (default from config)")
	generateCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "Random seed for reproducibility (0 = time-based)")
	generateCmd.MarkFlagRequired("domain")
}

// newManager builds the domain manager from the app config.
func newManager() (*domain.Manager, *config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return domain.NewManager(domain.NewDirStore(cfg.Domains.Dir)), cfg, nil
}

var (
	genDomain string
	genCount  int
	genMix    string
	genOutput string
	genSeed   int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of synthetic PDF documents",
	Run: func(cmd *cobra.Command, args []string) {
		manager, cfg, err := newManager()
		if err != nil {
			log.Fatalf("%v", err)
		}

		mix, err := template.ParseMix(genMix)
		if err != nil {
			log.Fatalf("Invalid --lang-mix: %v", err)
		}

		domainCfg, err := manager.Load(genDomain)
		if err != nil {
			log.Fatalf("Failed to load domain: %v", err)
		}

		outDir := genOutput
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}

		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		manifest, err := storage.Open(cfg.Output.Manifest)
		if err != nil {
			log.Fatalf("Failed to open manifest database: %v", err)
		}
		defer manifest.Close()

		runner := &generator.Runner{
			Config:    domainCfg,
			Engine:    template.NewEngine(domainCfg, template.NewSource(seed)),
			Languages: template.NewLanguageSelector(mix, template.NewSource(seed)),
			Renderer:  pdf.NewRenderer(cfg.PDF.Author),
			Manifest:  manifest,
			OutputDir: outDir,
		}

		fmt.Printf("📄 Generating %d documents for domain %q (seed %d)...\n", genCount, genDomain, seed)
		start := time.Now()

		summary, err := runner.Run(context.Background(), genCount)
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}

		fmt.Printf("✅ Generated %d PDFs in %v\n", summary.Generated, time.Since(start).Round(time.Millisecond))
		if summary.Failed > 0 {
			fmt.Printf("⚠️  Failed: %d\n", summary.Failed)
		}
		fmt.Printf("📁 Output directory: %s\n", outDir)
		fmt.Printf("📊 Total size: %s\n", generator.HumanSize(summary.TotalBytes))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [domain]",
	Short: "Validate a domain configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manager, _, err := newManager()
		if err != nil {
			log.Fatalf("%v", err)
		}

		name := args[0]
		cfg, err := manager.Check(name)
		if err != nil {
			fmt.Printf("✗ %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Domain %q is valid:\n", name)
		fmt.Printf("  - Languages: %s\n", strings.Join(cfg.Languages, ", "))
		fmt.Printf("  - Categories: %d\n", len(cfg.Categories))
		fmt.Printf("  - Total templates: %d\n", cfg.TemplateCount())
	},
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List available domains",
	Run: func(cmd *cobra.Command, args []string) {
		manager, cfg, err := newManager()
		if err != nil {
			log.Fatalf("%v", err)
		}

		names, err := manager.Domains()
		if err != nil {
			log.Fatalf("Failed to list domains: %v", err)
		}
		if len(names) == 0 {
			fmt.Printf("No domains found in %s\n", cfg.Domains.Dir)
			return
		}

		for _, name := range names {
			dc, err := manager.Load(name)
			if err != nil {
				fmt.Printf("✗ %-20s %v\n", name, err)
				continue
			}
			fmt.Printf("✓ %-20s %d categories, languages: %s\n",
				name, len(dc.Categories), strings.Join(dc.Languages, ", "))
		}
	},
}
