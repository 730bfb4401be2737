package platform

// Package platform contains OS integration: where the application keeps its
// files and creating that directory on first run.
