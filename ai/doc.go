// Copyright 2025 Silvan Networks
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


// Package ai provides the embedding-function abstraction used by the
// sync engine.
//
// The pipeline depends only on the Embedder interface; the openai
// subpackage backs it with any OpenAI-compatible embedding API (Ollama,
// LocalAI, vLLM, OpenAI itself), and the mock subpackage provides a
// deterministic test double.
package ai
