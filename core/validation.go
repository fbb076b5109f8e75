// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidatePerson validates a Person before it is written.
//
// Validation rules:
//   - ID must not be empty
//   - at least one of GitHubLogin, LinkedInURL or TwitterUsername is set
//   - LinkedInURL, when set, is already normalized
//   - every recorded artifact kind is known
//
// NOT validated (populated by later steps):
//   - provider payloads
//   - derived scalars
func ValidatePerson(p *Person) error {
	if p == nil {
		return fmt.Errorf("%w: person is nil", ErrInvalidPerson)
	}
	if p.ID == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidPerson)
	}
	if p.GitHubLogin == "" && p.LinkedInURL == "" && p.TwitterUsername == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPerson, ErrMissingIdentifier)
	}
	if p.LinkedInURL != "" {
		normalized, ok := NormalizeLinkedInURL(p.LinkedInURL)
		if !ok || normalized != p.LinkedInURL {
			return fmt.Errorf("%w: %w: %q", ErrInvalidPerson, ErrInvalidLinkedInURL, p.LinkedInURL)
		}
	}
	for kind := range p.Artifacts {
		if !kind.Valid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidPerson, ErrUnknownArtifact, kind)
		}
	}
	return nil
}

// ValidatePatch rejects a patch that would store a LinkedIn URL in
// non-normalized form. Clearing the URL is allowed.
func ValidatePatch(pp PersonPatch) error {
	if pp.LinkedInURL == nil || *pp.LinkedInURL == "" {
		return nil
	}
	normalized, ok := NormalizeLinkedInURL(*pp.LinkedInURL)
	if !ok || normalized != *pp.LinkedInURL {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPerson, ErrInvalidLinkedInURL, *pp.LinkedInURL)
	}
	return nil
}

// ValidateCompany validates a Company before it is written.
func ValidateCompany(c *Company) error {
	if c == nil {
		return fmt.Errorf("%w: company is nil", ErrInvalidCompany)
	}
	if c.ID == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidCompany)
	}
	if c.Name == "" && c.LinkedInURL == "" {
		return fmt.Errorf("%w: name or linkedin url required", ErrInvalidCompany)
	}
	return nil
}
