package storage

import "testing"

func TestIsAllowedFolder(t *testing.T) {
	for _, folder := range []string{FolderDoctors, FolderServices, FolderCategories, FolderBanners, FolderAvatars, FolderGeneral} {
		if !IsAllowedFolder(folder) {
			t.Errorf("IsAllowedFolder(%q) = false, want true", folder)
		}
	}
	for _, folder := range []string{"", "videos", "Doctors", "../doctors"} {
		if IsAllowedFolder(folder) {
			t.Errorf("IsAllowedFolder(%q) = true, want false", folder)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"webp", "image/webp"},
		{"JPG", "image/jpeg"},
		{"png", "image/png"},
		{"pdf", "application/pdf"},
		{"mp4", "application/octet-stream"},
		{"", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := contentTypeFor(tt.ext); got != tt.want {
			t.Errorf("contentTypeFor(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.JPG", "jpg"},
		{"scan.v2.pdf", "pdf"},
		{"noext", ""},
		{"trailingdot.", ""},
	}
	for _, tt := range tests {
		if got := fileExtension(tt.filename); got != tt.want {
			t.Errorf("fileExtension(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestKeyFromURL(t *testing.T) {
	url := "https://clinic-assets.s3.me-south-1.amazonaws.com/doctors/1/2026/08/29/abcd1234.webp"
	if got, want := keyFromURL(url), "doctors/1/2026/08/29/abcd1234.webp"; got != want {
		t.Errorf("keyFromURL(%q) = %q, want %q", url, got, want)
	}
	if got := keyFromURL("https://example.com/not-s3.png"); got != "" {
		t.Errorf("keyFromURL on foreign URL = %q, want empty", got)
	}
}
