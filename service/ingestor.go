package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"inmobiliaria-premium/models"
	"inmobiliaria-premium/utils"
)

// imageURLTemplate turns a Drive file id into a directly embeddable
// image URL, no extra API call needed.
const imageURLTemplate = "https://lh3.googleusercontent.com/d/%s"

// IngestFolder maps one property folder to a record: it lists the
// folder's files, reads the info file if there is one, and collects the
// image URLs sorted by file name.
//
// Only the file-listing call can fail the folder, in which case nil is
// returned and the folder is skipped. A broken or missing info file
// degrades to the defaults derived from the folder name; the caller
// never sees an error either way.
func (s *CatalogService) IngestFolder(ctx context.Context, folder DriveFile) *models.Property {
	files, err := s.driveService.ListFolderFiles(ctx, folder.ID)
	if err != nil {
		log.Printf("❌ Error listing files for folder %s: %v", folder.Name, err)
		return nil
	}
	if files == nil {
		return nil
	}

	property := models.DefaultProperty(folder.ID, folder.Name)

	if infoFile := findInfoFile(files); infoFile != nil {
		content, err := s.driveService.FetchInfoText(ctx, *infoFile)
		if err != nil {
			log.Printf("⚠️  Error reading %s for %s: %v", infoFile.Name, folder.Name, err)
		} else {
			property = utils.ParseInfoFile(content, property)
		}
	}

	imageFiles := selectImageFiles(files)
	images := make([]string, 0, len(imageFiles))
	for _, img := range imageFiles {
		images = append(images, fmt.Sprintf(imageURLTemplate, img.ID))
	}
	property.Images = images

	return &property
}

// findInfoFile returns the first file named info.txt or datos.txt,
// case-insensitively, or nil when the folder has none.
func findInfoFile(files []DriveFile) *DriveFile {
	for i := range files {
		name := strings.ToLower(files[i].Name)
		if name == "info.txt" || name == "datos.txt" {
			return &files[i]
		}
	}
	return nil
}

// selectImageFiles returns the image files of a folder sorted by name,
// which fixes the gallery order.
func selectImageFiles(files []DriveFile) []DriveFile {
	var images []DriveFile
	for _, f := range files {
		if strings.HasPrefix(f.MimeType, "image/") {
			images = append(images, f)
		}
	}
	sort.Slice(images, func(i, j int) bool {
		return images[i].Name < images[j].Name
	})
	return images
}
