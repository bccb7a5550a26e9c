package demo

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

// Search terms handed to the public random-image source.
var garbageSearchTerms = []string{
	"garbage", "trash", "waste", "litter", "pollution",
	"plastic waste", "dump", "rubbish", "junk",
}

const fallbackImageURL = "https://via.placeholder.com/800x600/16a34a/FFFFFF?text=Garbage+Watch"

var imageHTTPClient = &http.Client{Timeout: 10 * time.Second}

// fetchGarbageImage downloads a random garbage-themed image. On any failure
// it falls back to a fixed placeholder so generation can continue.
func fetchGarbageImage(ctx context.Context) ([]byte, error) {
	term := garbageSearchTerms[rand.Intn(len(garbageSearchTerms))]
	width := 800 + rand.Intn(400)
	height := 600 + rand.Intn(300)
	url := fmt.Sprintf("https://source.unsplash.com/random/%dx%d/?%s", width, height, term)

	data, err := getImage(ctx, url)
	if err == nil {
		return data, nil
	}
	fmt.Println("Error fetching image:", err)

	return getImage(ctx, fallbackImageURL)
}

func getImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := imageHTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
