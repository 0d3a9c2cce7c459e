package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/config"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/hadith"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/proverbs"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/reflection"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/wisdom"
)

type app struct {
	out    io.Writer
	asJSON bool
	facade *wisdom.Facade
	// newFacade is replaced in tests.
	newFacade func() (*wisdom.Facade, error)
}

func defaultFacade() (*wisdom.Facade, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return wisdom.New(
		hadith.NewGateway(cfg.HadithBaseURL, hadith.WithHTTPClient(&http.Client{Timeout: cfg.HadithTimeout})),
		proverbs.Default(),
		reflection.NewGenerator(cfg.Reflection()),
	), nil
}

func rootCmd(out io.Writer) *cobra.Command {
	return newRootCmd(&app{out: out, newFacade: defaultFacade})
}

func newRootCmd(a *app) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "wisdom",
		Short:         "Daily hadith, proverbs and reflections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zerolog.SetGlobalLevel(zerolog.Disabled)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			f, err := a.newFacade()
			if err != nil {
				return err
			}
			a.facade = f
			return nil
		},
	}
	root.SetOut(a.out)
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of text")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log upstream calls to stderr")

	root.AddCommand(
		a.hadithCmd(),
		a.proverbCmd(),
		a.proverbsCmd(),
		a.categoriesCmd(),
		a.dailyCmd(),
		a.reflectCmd(),
	)
	return root
}

func (a *app) hadithCmd() *cobra.Command {
	var collection string
	cmd := &cobra.Command{
		Use:   "hadith",
		Short: "Fetch a random hadith",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.fetchHadith(cmd, collection)
			if err != nil {
				return err
			}
			return a.print(h, func(w io.Writer) { writeHadith(w, *h) })
		},
	}
	cmd.Flags().StringVarP(&collection, "collection", "c", "", "pin to a collection (bukhari or muslim)")
	return cmd
}

func (a *app) proverbCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "proverb",
		Short: "Print a random proverb",
		RunE: func(cmd *cobra.Command, args []string) error {
			if category == "" {
				p := a.facade.RandomProverb()
				return a.print(p, func(w io.Writer) { writeProverb(w, p) })
			}

			c, err := model.ParseCategory(category)
			if err != nil {
				return err
			}
			p, ok := a.facade.RandomProverbIn(c)
			if !ok {
				return fmt.Errorf("no proverbs in category %s", c)
			}
			return a.print(p, func(w io.Writer) { writeProverb(w, p) })
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "restrict to a category")
	return cmd
}

func (a *app) proverbsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "proverbs",
		Short: "List proverbs",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := a.facade.AllProverbs()
			if category != "" {
				c, err := model.ParseCategory(category)
				if err != nil {
					return err
				}
				list = a.facade.ProverbsByCategory(c)
			}
			return a.print(list, func(w io.Writer) {
				for i, p := range list {
					if i > 0 {
						fmt.Fprintln(w)
					}
					writeProverb(w, p)
				}
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "restrict to a category")
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List proverb categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := model.Categories()
			return a.print(cats, func(w io.Writer) {
				for _, c := range cats {
					fmt.Fprintln(w, c)
				}
			})
		},
	}
}

func (a *app) dailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Fetch a hadith and a proverb together",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.facade.Daily(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(d, func(w io.Writer) {
				writeHadith(w, d.Hadith)
				fmt.Fprintln(w)
				writeProverb(w, d.Proverb)
			})
		},
	}
}

func (a *app) reflectCmd() *cobra.Command {
	var collection string
	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Fetch a hadith and generate short reflections on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.fetchHadith(cmd, collection)
			if err != nil {
				return err
			}
			reflections, err := a.facade.Reflect(cmd.Context(), *h)
			if err != nil {
				return err
			}
			result := struct {
				Hadith      model.Hadith      `json:"hadith"`
				Reflections model.Reflections `json:"reflections"`
			}{Hadith: *h, Reflections: reflections}

			return a.print(result, func(w io.Writer) {
				writeHadith(w, *h)
				fmt.Fprintln(w)
				for i, r := range reflections {
					fmt.Fprintf(w, "%d. %s\n", i+1, r)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&collection, "collection", "c", "", "pin to a collection (bukhari or muslim)")
	return cmd
}

func (a *app) fetchHadith(cmd *cobra.Command, collection string) (*model.Hadith, error) {
	if collection == "" {
		return a.facade.RandomHadith(cmd.Context())
	}
	c, err := hadith.ParseCollection(collection)
	if err != nil {
		return nil, err
	}
	return a.facade.HadithFrom(cmd.Context(), c)
}

func (a *app) print(v any, text func(w io.Writer)) error {
	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(a.out)
	return nil
}

func writeHadith(w io.Writer, h model.Hadith) {
	header := h.Collection
	if h.Reference != nil {
		header = *h.Reference
	}
	fmt.Fprintln(w, header)
	if h.Narrator != nil {
		fmt.Fprintln(w, *h.Narrator)
	}
	fmt.Fprintln(w, strings.TrimSpace(h.TextEnglish))
	if h.TextArabic != nil {
		fmt.Fprintln(w, *h.TextArabic)
	}
}

func writeProverb(w io.Writer, p model.Proverb) {
	fmt.Fprintf(w, "[%s] %s\n", p.Category, p.Text)
	if p.Source != nil {
		fmt.Fprintf(w, "  - %s\n", *p.Source)
	}
}
