package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"appleradio-scraper/config"
	"appleradio-scraper/exporter"
	"appleradio-scraper/googlecalendar"
	"appleradio-scraper/schedule"
	"appleradio-scraper/scraper"
	"appleradio-scraper/site"
	"appleradio-scraper/uploader"
)

func main() {
	configFile := flag.String("config", "config.json", "path to the config file")
	daemon := flag.Bool("daemon", false, "keep running, re-scraping on an interval")
	interval := flag.Duration("interval", time.Hour, "re-scrape interval in daemon mode")
	serve := flag.String("serve", "", "port to serve the exports and status on")
	clearCalendar := flag.Bool("clear-calendar", false, "clear the Google Calendar before the first sync")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var srv *site.Server
	if *serve != "" {
		srv = site.NewServer(cfg)
		go srv.Start(*serve)
	}

	clearAll := *clearCalendar
	for {
		if err := run(cfg, srv, clearAll); err != nil {
			fmt.Println("Scrape run failed:", err)
		}
		if !*daemon {
			return
		}
		clearAll = false
		time.Sleep(*interval)
	}
}

func run(cfg *config.Config, srv *site.Server, clearCalendar bool) error {
	scrapedAt := time.Now().UTC()

	conv, err := schedule.NewConverter(cfg.SourceZone, cfg.DisplayZone, scrapedAt)
	if err != nil {
		return fmt.Errorf("error building timezone converter: %v", err)
	}
	fmt.Printf("Converting %s to %s (offset %d hours)\n", cfg.SourceZone, cfg.DisplayZone, conv.Offset)

	pw, browser, err := scraper.NewBrowser()
	if err != nil {
		return fmt.Errorf("error starting browser: %v", err)
	}
	defer pw.Stop()
	defer browser.Close()

	var mu sync.Mutex
	byStation := make(map[string][]schedule.Show)

	p := pool.New().WithMaxGoroutines(3)
	for _, station := range cfg.Stations {
		station := station
		p.Go(func() {
			shows := scraper.ScrapeStation(browser, station.Name, station.URL, conv)
			if len(shows) == 0 {
				return
			}
			mu.Lock()
			byStation[station.Name] = shows
			mu.Unlock()
		})
	}
	p.Wait()

	if len(byStation) == 0 {
		return fmt.Errorf("no shows scraped from any station")
	}

	var stations []string
	for name := range byStation {
		stations = append(stations, name)
	}
	sort.Strings(stations)

	var allShows []schedule.Show
	var reports []schedule.CoverageReport
	for _, name := range stations {
		shows := byStation[name]
		report := schedule.VerifyCoverage(name, shows)
		printCoverage(report)
		reports = append(reports, report)

		if cfg.FillGaps {
			shows = schedule.InsertGapPlaceholders(name, shows, report)
		}
		allShows = append(allShows, shows...)
	}

	printSummary(allShows)

	if err := exporter.SaveJSON(cfg.JSONFile, stations, allShows, scrapedAt); err != nil {
		return fmt.Errorf("error saving JSON: %v", err)
	}
	if err := exporter.SaveCSV(cfg.CSVFile, allShows, scrapedAt); err != nil {
		return fmt.Errorf("error saving CSV: %v", err)
	}
	if err := exporter.SaveICS(cfg.ICSFile, allShows, scrapedAt, cfg.DisplayZone); err != nil {
		return fmt.Errorf("error saving ICS: %v", err)
	}
	fmt.Printf("Exports written: %s, %s, %s\n", cfg.JSONFile, cfg.CSVFile, cfg.ICSFile)

	if cfg.GithubToken != "" && cfg.GithubRepo != "" {
		files := []string{cfg.JSONFile, cfg.CSVFile, cfg.ICSFile}
		if err := uploader.UploadAll(cfg.GithubToken, cfg.GithubRepo, cfg.GithubPath, files); err != nil {
			fmt.Println("Error uploading exports to GitHub:", err)
		}
	}

	if cfg.GoogleCalendarID != "" {
		service, err := googlecalendar.GetCalendarService(cfg)
		if err != nil {
			fmt.Println("Error getting Google Calendar service:", err)
		} else if err := googlecalendar.SyncShows(service, cfg.GoogleCalendarID, allShows, scrapedAt, cfg.DisplayZone, clearCalendar); err != nil {
			fmt.Println("Error syncing shows with Google Calendar:", err)
		}
	}

	if srv != nil {
		srv.SetStatus(scrapedAt, reports)
	}

	return nil
}

func printCoverage(report schedule.CoverageReport) {
	fmt.Printf("\n%s: %d shows, %d minutes covered (%.1f%%)\n",
		report.Station, report.ShowCount, report.TotalMinutes, report.Percent)
	for _, gap := range report.Gaps {
		fmt.Printf("  GAP %s (%d minutes) between '%s' and '%s'\n",
			gap.ClockRange, gap.Minutes, gap.AfterShow, gap.BeforeShow)
	}
	for _, overlap := range report.Overlaps {
		fmt.Printf("  OVERLAP: %s\n", overlap)
	}
	if report.Passed {
		fmt.Printf("  Full 24-hour coverage verified.\n")
	} else {
		fmt.Printf("  Coverage incomplete.\n")
	}
}

func printSummary(shows []schedule.Show) {
	fmt.Printf("\nScraped %d shows in total. First few:\n", len(shows))
	for i, show := range shows {
		if i >= 10 {
			break
		}
		fmt.Printf("  [%s] %s: %s\n", show.Station, show.TimeSlot, show.Title)
	}
}
