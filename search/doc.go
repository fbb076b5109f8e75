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


// Package search ranks stored people against free-text queries.
//
// The Searcher embeds the query, asks the vector store for the closest
// vectors in one namespace and joins the matches back to their Person rows:
//   - RankX scores X bios by similarity, location and audience (see derive.ScoreX)
//   - SimilarTechnologies lists the technology vectors closest to a skill
package search
