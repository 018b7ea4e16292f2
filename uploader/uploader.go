package uploader

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
)

type githubUploadRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

type githubContentResponse struct {
	SHA string `json:"sha"`
}

// UploadToGitHub pushes a local file to the given repo path through the
// GitHub contents API. If the file already exists its blob SHA is fetched
// first so the call updates it instead of failing with a 422.
func UploadToGitHub(token, repo, repoPath, filename string) error {
	fileContent, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %v", err)
	}

	target := path.Join(repoPath, path.Base(filename))
	uploadURL := fmt.Sprintf("https://api.github.com/repos/%s/contents/%s", repo, target)

	sha, err := existingFileSHA(token, uploadURL)
	if err != nil {
		return err
	}

	body := githubUploadRequest{
		Message: fmt.Sprintf("Update %s", path.Base(filename)),
		Content: base64.StdEncoding.EncodeToString(fileContent),
		SHA:     sha,
	}
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error marshalling JSON: %v", err)
	}

	req, err := http.NewRequest("PUT", uploadURL, bytes.NewBuffer(bodyJSON))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("error uploading to GitHub, status code: %d, response: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// UploadAll uploads each of the given files, keeping going after failures
// so one bad export does not block the rest.
func UploadAll(token, repo, repoPath string, filenames []string) error {
	var firstErr error
	for _, filename := range filenames {
		if err := UploadToGitHub(token, repo, repoPath, filename); err != nil {
			fmt.Printf("Error uploading %s: %v\n", filename, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Printf("Uploaded %s to %s\n", path.Base(filename), repo)
	}
	return firstErr
}

func existingFileSHA(token, contentURL string) (string, error) {
	req, err := http.NewRequest("GET", contentURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error checking existing file: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("error checking existing file, status code: %d, response: %s", resp.StatusCode, string(respBody))
	}

	var content githubContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return "", fmt.Errorf("error decoding response: %v", err)
	}
	return content.SHA, nil
}
