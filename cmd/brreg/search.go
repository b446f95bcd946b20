package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sternrassler/brreg-client/pkg/pagination"
	"github.com/Sternrassler/brreg-client/pkg/query"
	"github.com/Sternrassler/brreg-client/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// pagingFlags are shared by every search subcommand.
type pagingFlags struct {
	size     int
	page     int
	sort     string
	maxPages int
	prefetch int
}

func (f *pagingFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.size, "size", 0, "page size (0 uses the server default)")
	fs.IntVar(&f.page, "page", 0, "first page to print")
	fs.StringVar(&f.sort, "sort", "", "sort order: ASC or DESC")
	fs.IntVar(&f.maxPages, "max-pages", 1, "number of pages to print (0 prints all)")
	fs.IntVar(&f.prefetch, "prefetch", 0, "fetch the printed pages with this many concurrent requests")
}

func (f *pagingFlags) validate() error {
	for _, flag := range []struct {
		name  string
		value int
	}{
		{"size", f.size},
		{"page", f.page},
		{"max-pages", f.maxPages},
		{"prefetch", f.prefetch},
	} {
		if flag.value < 0 {
			return fmt.Errorf("--%s must be >= 0 (got %d)", flag.name, flag.value)
		}
	}
	return nil
}

func (f *pagingFlags) paging() query.Paging {
	p := query.Paging{Sort: query.Sort(f.sort)}
	if f.size > 0 {
		p.Size = query.Int(f.size)
	}
	if f.page > 0 {
		p.Page = query.Int(f.page)
	}
	return p
}

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search entities or subordinate units",
	}
	cmd.AddCommand(newSearchEnheterCmd(a), newSearchUnderenheterCmd(a))
	return cmd
}

func newSearchEnheterCmd(a *app) *cobra.Command {
	var (
		pf                pagingFlags
		navn              string
		overordnet        string
		konkurs           bool
		naeringskoder     []string
		kommunenumre      []string
		organisasjonsform []string
	)

	cmd := &cobra.Command{
		Use:   "enheter",
		Short: "Search entities, printing one JSON record per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := pf.validate(); err != nil {
				return err
			}

			q := query.EnhetQuery{
				Paging:            pf.paging(),
				Navn:              navn,
				Organisasjonsform: organisasjonsform,
			}
			if cmd.Flags().Changed("konkurs") {
				q.Konkurs = query.Bool(konkurs)
			}

			var err error
			if q.OverordnetEnhet, err = parseOptional(overordnet, types.ParseOrganisasjonsnummer); err != nil {
				return err
			}
			if q.Naeringskode, err = parseAll(naeringskoder, types.ParseNaeringskode); err != nil {
				return err
			}
			if q.Kommunenummer, err = parseAll(kommunenumre, types.ParseKommunenummer); err != nil {
				return err
			}

			cursor, err := a.client.SearchEnhet(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printPages[types.Enhet, query.EnhetQuery](cmd.Context(), a, cursor, pf)
		},
	}

	fs := cmd.Flags()
	pf.register(fs)
	fs.StringVar(&navn, "navn", "", "name to match")
	fs.StringVar(&overordnet, "overordnet-enhet", "", "organization number of the parent entity")
	fs.BoolVar(&konkurs, "konkurs", false, "only bankrupt (true) or non-bankrupt (false) entities")
	fs.StringSliceVar(&naeringskoder, "naeringskode", nil, "industry codes, e.g. 62.010")
	fs.StringSliceVar(&kommunenumre, "kommunenummer", nil, "municipality numbers of the business address")
	fs.StringSliceVar(&organisasjonsform, "organisasjonsform", nil, "organization forms, e.g. AS")
	return cmd
}

func newSearchUnderenheterCmd(a *app) *cobra.Command {
	var (
		pf            pagingFlags
		navn          string
		overordnet    string
		naeringskoder []string
		kommunenumre  []string
	)

	cmd := &cobra.Command{
		Use:   "underenheter",
		Short: "Search subordinate units, printing one JSON record per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := pf.validate(); err != nil {
				return err
			}

			q := query.UnderenhetQuery{
				Paging: pf.paging(),
				Navn:   navn,
			}

			var err error
			if q.OverordnetEnhet, err = parseOptional(overordnet, types.ParseOrganisasjonsnummer); err != nil {
				return err
			}
			if q.Naeringskode, err = parseAll(naeringskoder, types.ParseNaeringskode); err != nil {
				return err
			}
			if q.Kommunenummer, err = parseAll(kommunenumre, types.ParseKommunenummer); err != nil {
				return err
			}

			cursor, err := a.client.SearchUnderenhet(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printPages[types.Underenhet, query.UnderenhetQuery](cmd.Context(), a, cursor, pf)
		},
	}

	fs := cmd.Flags()
	pf.register(fs)
	fs.StringVar(&navn, "navn", "", "name to match")
	fs.StringVar(&overordnet, "overordnet-enhet", "", "organization number of the owning entity")
	fs.StringSliceVar(&naeringskoder, "naeringskode", nil, "industry codes, e.g. 62.010")
	fs.StringSliceVar(&kommunenumre, "kommunenummer", nil, "municipality numbers of the location address")
	return cmd
}

// printPages writes the records of pages [pf.page, pf.page+pf.maxPages) as
// JSON lines. A maxPages of zero prints every remaining page.
func printPages[T any, Q pagination.Query[Q]](ctx context.Context, a *app, c *pagination.Cursor[T, Q], pf pagingFlags) error {
	last := c.NumPages()
	if pf.maxPages > 0 {
		last = min(last, pf.page+pf.maxPages)
	}

	if pf.prefetch > 0 {
		cfg := pagination.DefaultPrefetchConfig()
		cfg.MaxConcurrency = pf.prefetch
		if err := c.PrefetchRange(ctx, cfg, pf.page, last); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(a.out)
	for n := pf.page; n < last; n++ {
		p, ok, err := c.Page(ctx, n)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		for _, item := range p.Items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
	}

	a.logger.Info().
		Int("total_elements", c.TotalElements()).
		Int("total_pages", c.NumPages()).
		Int("printed_pages", max(0, last-pf.page)).
		Msg("Search done")
	return nil
}

func parseOptional[T any](s string, parse func(string) (T, error)) (T, error) {
	if s == "" {
		var zero T
		return zero, nil
	}
	return parse(s)
}

func parseAll[T any](ss []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(ss))
	for _, s := range ss {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
