// seed_comparisons.go: standalone script that reads per-group matcher
// performance from a CSV file and saves the resulting ensemble series as a
// comparison via the FairEM360 API.
//
// The CSV header is "measure,matcher,<group>,<group>,..." with one row per
// matcher and measure.
//
// Usage:
//
//	go run scripts/seed_comparisons.go -csv results.csv -dataset dblp-acm -api http://localhost:8700
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
)

type point struct {
	Disparity   float64           `json:"disparity"`
	Performance float64           `json:"performance"`
	Matchers    map[string]string `json:"matchers"`
}

type series struct {
	Name string  `json:"name"`
	Data []point `json:"data"`
}

type comparison struct {
	Name               string   `json:"name"`
	DatasetID          string   `json:"dataset_id"`
	SensitiveAttribute string   `json:"sensitive_attribute,omitempty"`
	Series             []series `json:"series"`
}

type row struct {
	matcher string
	scores  []float64
}

func main() {
	csvPath := flag.String("csv", "results.csv", "path to per-group performance CSV")
	apiURL := flag.String("api", "http://localhost:8700", "FairEM360 API base URL")
	dataset := flag.String("dataset", "", "dataset id")
	attr := flag.String("attr", "", "sensitive attribute the groups belong to")
	name := flag.String("name", "", "comparison name (defaults to dataset id)")
	maxPoints := flag.Int("max-points", 10000, "skip measures whose ensemble exceeds this many points")
	dryRun := flag.Bool("dry-run", false, "print the comparison without posting")
	flag.Parse()

	if *dataset == "" {
		log.Fatal("-dataset is required")
	}
	if *name == "" {
		*name = *dataset
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Fatalf("read csv: %v", err)
	}
	if len(records) < 2 || len(records[0]) < 3 {
		log.Fatal("csv needs a header with at least one group column and one data row")
	}
	groups := records[0][2:]

	byMeasure := map[string][]row{}
	for i, rec := range records[1:] {
		if len(rec) != len(records[0]) {
			log.Fatalf("line %d: expected %d fields, got %d", i+2, len(records[0]), len(rec))
		}
		r := row{matcher: rec[1], scores: make([]float64, len(groups))}
		for j, s := range rec[2:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				log.Fatalf("line %d: %s: %v", i+2, groups[j], err)
			}
			r.scores[j] = v
		}
		byMeasure[rec[0]] = append(byMeasure[rec[0]], r)
	}

	measures := make([]string, 0, len(byMeasure))
	for m := range byMeasure {
		measures = append(measures, m)
	}
	sort.Strings(measures)

	c := comparison{Name: *name, DatasetID: *dataset, SensitiveAttribute: *attr}
	for _, m := range measures {
		rows := byMeasure[m]
		total := 1
		for range groups {
			total *= len(rows)
			if total > *maxPoints {
				break
			}
		}
		if total > *maxPoints {
			log.Printf("SKIP %s: %d matchers over %d groups exceeds -max-points", m, len(rows), len(groups))
			continue
		}
		c.Series = append(c.Series, series{Name: m, Data: ensemble(rows, groups)})
		fmt.Printf("  %-40s %d points\n", m, total)
	}

	body, err := json.Marshal(c)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if *dryRun {
		fmt.Println(string(body))
		return
	}

	resp, err := http.Post(*apiURL+"/api/v1/comparisons", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("post: unexpected status %d", resp.StatusCode)
	}

	var created struct {
		ID string `json:"id"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&created)
	fmt.Printf("created comparison %s with %d series\n", created.ID, len(c.Series))
}

// ensemble assigns every combination of matchers to the groups. Each point's
// performance is the worst group score and its disparity is the spread
// between the best and worst group.
func ensemble(rows []row, groups []string) []point {
	var out []point
	idx := make([]int, len(groups))
	for {
		p := point{Matchers: make(map[string]string, len(groups))}
		lo, hi := rows[idx[0]].scores[0], rows[idx[0]].scores[0]
		for g, r := range idx {
			v := rows[r].scores[g]
			p.Matchers[groups[g]] = rows[r].matcher
			lo = min(lo, v)
			hi = max(hi, v)
		}
		p.Disparity = hi - lo
		p.Performance = lo
		out = append(out, p)

		// advance the odometer
		g := len(idx) - 1
		for g >= 0 {
			idx[g]++
			if idx[g] < len(rows) {
				break
			}
			idx[g] = 0
			g--
		}
		if g < 0 {
			return out
		}
	}
}
