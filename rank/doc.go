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


// Package rank classifies dictionary entries against a compiled query.
//
// A Ranker fans a batch of entry texts out over a worker pool. Every entry is
// scored with matcher.Table.Relevance and highlighted with Table.Highlight;
// compiled tables are read-only so workers share one table safely. Hits come
// back ordered by relevance, with ties kept in input order.
package rank
