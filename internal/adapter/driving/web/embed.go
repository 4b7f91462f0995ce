package web

import "embed"

// StaticFS holds the embedded static assets (stylesheets).
//
//go:embed static/*
var StaticFS embed.FS
