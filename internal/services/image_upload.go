package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

// ImgurResponse is the Imgur API response envelope.
type ImgurResponse struct {
	Data struct {
		ID         string `json:"id"`
		Link       string `json:"link"`
		DeleteHash string `json:"deletehash"`
		Type       string `json:"type"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// maxUploadSize caps avatar and journal image uploads at 5 MB.
const maxUploadSize = 5 << 20

// UploadImage pushes an image to the configured host and returns its
// public URL. Used for profile avatars and journal entry photos; the app
// stores only the URL, hosting stays external.
func UploadImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	clientID := os.Getenv("IMGUR_CLIENT_ID")
	if clientID == "" {
		return "", fmt.Errorf("IMGUR_CLIENT_ID not configured")
	}
	if header.Size > maxUploadSize {
		return "", fmt.Errorf("image exceeds %d byte limit", maxUploadSize)
	}

	fileBytes, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	base64Image := base64.StdEncoding.EncodeToString(fileBytes)

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	if err := writer.WriteField("image", base64Image); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := writer.WriteField("type", "base64"); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	writer.Close()

	req, err := http.NewRequest("POST", "https://api.imgur.com/3/image", &requestBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+clientID)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var imgurResp ImgurResponse
	if err := json.Unmarshal(body, &imgurResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if !imgurResp.Success {
		return "", fmt.Errorf("image upload failed: status %d", imgurResp.Status)
	}

	return imgurResp.Data.Link, nil
}
