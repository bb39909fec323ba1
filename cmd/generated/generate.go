//go:generate go run github.com/probekit/buildprobes/cmd/genmain -o main.go

package main
