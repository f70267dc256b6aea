//go:build ignore

// Генератор синтетического фида адресов для локальных запусков конвейера.
//
// Usage:
//
//	go run scripts/gen_feed.go -out data/addresses.csv -n 5000
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
)

// Опорные точки с реальными кодами CP4: вокруг каждой рассеиваем адреса
var anchors = []struct {
	cp4      string
	lat, lon float64
}{
	{"1000", 38.7369, -9.1427}, // Lisboa
	{"4000", 41.1496, -8.6109}, // Porto
	{"3000", 40.2111, -8.4291}, // Coimbra
	{"8000", 37.0194, -7.9304}, // Faro
	{"4700", 41.5454, -8.4265}, // Braga
}

var streets = []string{
	"Rua Augusta",
	"Avenida da Liberdade",
	"Rua de Santa Catarina",
	"Praça do Comércio",
	"Rua Direita",
	"Travessa do Carmo",
	"Largo da Sé",
}

func main() {
	out := flag.String("out", "data/addresses.csv", "output CSV path")
	n := flag.Int("n", 5000, "number of address points")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"lat", "lon", "street", "house_number", "cp4", "cp3"}); err != nil {
		log.Fatalf("write header: %v", err)
	}

	for i := 0; i < *n; i++ {
		a := anchors[rng.Intn(len(anchors))]
		lat := a.lat + (rng.Float64()-0.5)*0.05
		lon := a.lon + (rng.Float64()-0.5)*0.05
		cp3 := fmt.Sprintf("%03d", rng.Intn(40))

		row := []string{
			strconv.FormatFloat(lat, 'f', 6, 64),
			strconv.FormatFloat(lon, 'f', 6, 64),
			streets[rng.Intn(len(streets))],
			strconv.Itoa(1 + rng.Intn(300)),
			a.cp4,
			cp3,
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("write row: %v", err)
		}
	}

	log.Printf("wrote %d address points to %s", *n, *out)
}
