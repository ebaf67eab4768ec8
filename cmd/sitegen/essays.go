// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/afolkest/afolkest.github.io/internal/essays"
	"github.com/afolkest/afolkest.github.io/pkg/types"
)

const (
	defaultFeedURL    = "https://extramediumplease.substack.com/feed"
	defaultEssaysFile = "essays.html"
	defaultCDNPrefix  = "https://substackcdn.com/image/fetch/w_320,h_213,c_fill,f_auto,q_auto:good,fl_progressive:steep,g_center/"

	// A browser-like User-Agent keeps feed and page origins from
	// blocking the fetches.
	defaultUserAgent = "Mozilla/5.0"

	defaultFeedTimeout = 30 * time.Second
	defaultPageTimeout = 10 * time.Second
	defaultFetchDelay  = 300 * time.Millisecond
)

var essaysCmd = &cobra.Command{
	Use:   "essays",
	Short: "Update the essays page from the blog's RSS feed",
	Long: `Essays fetches the blog's RSS feed, resolves a CDN thumbnail for each
post from its page's Open-Graph image, and rewrites the two marker
regions of the essays page: the curated selection (configured slug
order) and the full list (feed order).

Per-post fetch failures are logged and leave the thumbnail empty; the
target file is only written once every marker lookup has succeeded.`,
	RunE: runEssays,
}

func init() {
	essaysCmd.Flags().String("feed-url", "", "RSS feed URL (default: "+defaultFeedURL+")")
	essaysCmd.Flags().String("site-url", "", "blog base URL (default: feed URL without /feed)")
	essaysCmd.Flags().String("target", "", "HTML file to rewrite (default: "+defaultEssaysFile+")")
	essaysCmd.Flags().String("cdn-prefix", "", "image-transform URL prefix for thumbnails")
	essaysCmd.Flags().StringSlice("selected", nil, "curated post slugs, in display order")
	essaysCmd.Flags().Duration("timeout", defaultFeedTimeout, "feed fetch timeout")
	essaysCmd.Flags().Duration("page-timeout", defaultPageTimeout, "per-post page fetch timeout")
	essaysCmd.Flags().Duration("delay", defaultFetchDelay, "politeness delay between page fetches")

	rootCmd.AddCommand(essaysCmd)
}

func runEssays(cmd *cobra.Command, args []string) error {
	feedFlag, _ := cmd.Flags().GetString("feed-url")
	siteFlag, _ := cmd.Flags().GetString("site-url")
	targetFlag, _ := cmd.Flags().GetString("target")
	cdnFlag, _ := cmd.Flags().GetString("cdn-prefix")
	selected, _ := cmd.Flags().GetStringSlice("selected")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	pageTimeout, _ := cmd.Flags().GetDuration("page-timeout")
	delay, _ := cmd.Flags().GetDuration("delay")

	feedURL := cfgString(feedFlag, "essays.feed_url", defaultFeedURL)
	siteURL := cfgString(siteFlag, "essays.site_url", strings.TrimSuffix(feedURL, "/feed"))
	if len(selected) == 0 {
		selected = viper.GetStringSlice("essays.selected")
	}

	cfg := types.FeedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		FeedURL:     feedURL,
		SiteURL:     siteURL,
		TargetFile:  cfgString(targetFlag, "essays.target_file", defaultEssaysFile),
		PageTimeout: pageTimeout,
		FetchDelay:  delay,
		CDNPrefix:   cfgString(cdnFlag, "essays.cdn_prefix", defaultCDNPrefix),
		Selected:    selected,
	}

	return essays.Run(cmd.Context(), cfg, os.Stdout)
}
