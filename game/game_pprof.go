//go:build profile

package game

import (
	"log"
	"net/http"
	_ "net/http/pprof"
)

func serveProfile() {
	log.Fatal(http.ListenAndServe("localhost:6060", nil))
}

func init() {
	go serveProfile()
}
