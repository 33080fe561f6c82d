// Package ingest turns submission files into overlap.Document values.
//
// Plain text and Markdown are decoded as UTF-8 (or UTF-16 when a byte order
// mark says so) with undecodable bytes dropped. HTML is reduced to its
// readable text, PDF pages are extracted with github.com/ledongthuc/pdf and
// DOCX bodies are read from word/document.xml. Directories passed to
// LoadPaths are expanded one level deep in name order.
package ingest
