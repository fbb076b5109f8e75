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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPerson indicates a Person failed validation.
	ErrInvalidPerson = errors.New("invalid person")

	// ErrInvalidCompany indicates a Company failed validation.
	ErrInvalidCompany = errors.New("invalid company")

	// ErrMissingIdentifier indicates a Person carries no external identifier.
	ErrMissingIdentifier = errors.New("person has no external identifier")

	// ErrInvalidLinkedInURL indicates a LinkedIn URL that is not in normalized form.
	ErrInvalidLinkedInURL = errors.New("linkedin url is not normalized")

	// ErrUnknownArtifact indicates an ArtifactKind outside the known set.
	ErrUnknownArtifact = errors.New("unknown artifact kind")
)
