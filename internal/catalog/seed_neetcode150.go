package catalog

var neetcode150Seed = []Problem{
	p("contains-duplicate", "Contains Duplicate", Easy, "Arrays & Hashing"),
	p("valid-anagram", "Valid Anagram", Easy, "Arrays & Hashing"),
	p("two-sum", "Two Sum", Easy, "Arrays & Hashing"),
	p("group-anagrams", "Group Anagrams", Medium, "Arrays & Hashing"),
	p("top-k-frequent-elements", "Top K Frequent Elements", Medium, "Arrays & Hashing"),
	p("encode-and-decode-strings", "Encode and Decode Strings", Medium, "Arrays & Hashing"),
	p("product-of-array-except-self", "Product of Array Except Self", Medium, "Arrays & Hashing"),
	p("valid-sudoku", "Valid Sudoku", Medium, "Arrays & Hashing"),
	p("longest-consecutive-sequence", "Longest Consecutive Sequence", Medium, "Arrays & Hashing"),

	p("valid-palindrome", "Valid Palindrome", Easy, "Two Pointers"),
	p("two-sum-ii-input-array-is-sorted", "Two Sum II - Input Array Is Sorted", Medium, "Two Pointers"),
	p("3sum", "3Sum", Medium, "Two Pointers"),
	p("container-with-most-water", "Container With Most Water", Medium, "Two Pointers"),
	p("trapping-rain-water", "Trapping Rain Water", Hard, "Two Pointers"),

	p("best-time-to-buy-and-sell-stock", "Best Time to Buy and Sell Stock", Easy, "Sliding Window"),
	p("longest-substring-without-repeating-characters", "Longest Substring Without Repeating Characters", Medium, "Sliding Window"),
	p("longest-repeating-character-replacement", "Longest Repeating Character Replacement", Medium, "Sliding Window"),
	p("permutation-in-string", "Permutation in String", Medium, "Sliding Window"),
	p("minimum-window-substring", "Minimum Window Substring", Hard, "Sliding Window"),
	p("sliding-window-maximum", "Sliding Window Maximum", Hard, "Sliding Window"),

	p("valid-parentheses", "Valid Parentheses", Easy, "Stack"),
	p("min-stack", "Min Stack", Medium, "Stack"),
	p("evaluate-reverse-polish-notation", "Evaluate Reverse Polish Notation", Medium, "Stack"),
	p("generate-parentheses", "Generate Parentheses", Medium, "Stack"),
	p("daily-temperatures", "Daily Temperatures", Medium, "Stack"),
	p("car-fleet", "Car Fleet", Medium, "Stack"),
	p("largest-rectangle-in-histogram", "Largest Rectangle in Histogram", Hard, "Stack"),

	p("binary-search", "Binary Search", Easy, "Binary Search"),
	p("search-a-2d-matrix", "Search a 2D Matrix", Medium, "Binary Search"),
	p("koko-eating-bananas", "Koko Eating Bananas", Medium, "Binary Search"),
	p("find-minimum-in-rotated-sorted-array", "Find Minimum in Rotated Sorted Array", Medium, "Binary Search"),
	p("search-in-rotated-sorted-array", "Search in Rotated Sorted Array", Medium, "Binary Search"),
	p("time-based-key-value-store", "Time Based Key-Value Store", Medium, "Binary Search"),
	p("median-of-two-sorted-arrays", "Median of Two Sorted Arrays", Hard, "Binary Search"),

	p("reverse-linked-list", "Reverse Linked List", Easy, "Linked List"),
	p("merge-two-sorted-lists", "Merge Two Sorted Lists", Easy, "Linked List"),
	p("reorder-list", "Reorder List", Medium, "Linked List"),
	p("remove-nth-node-from-end-of-list", "Remove Nth Node From End of List", Medium, "Linked List"),
	p("copy-list-with-random-pointer", "Copy List With Random Pointer", Medium, "Linked List"),
	p("add-two-numbers", "Add Two Numbers", Medium, "Linked List"),
	p("linked-list-cycle", "Linked List Cycle", Easy, "Linked List"),
	p("find-the-duplicate-number", "Find the Duplicate Number", Medium, "Linked List"),
	p("lru-cache", "LRU Cache", Medium, "Linked List"),
	p("merge-k-sorted-lists", "Merge k Sorted Lists", Hard, "Linked List"),
	p("reverse-nodes-in-k-group", "Reverse Nodes in k-Group", Hard, "Linked List"),

	p("invert-binary-tree", "Invert Binary Tree", Easy, "Trees"),
	p("maximum-depth-of-binary-tree", "Maximum Depth of Binary Tree", Easy, "Trees"),
	p("diameter-of-binary-tree", "Diameter of Binary Tree", Easy, "Trees"),
	p("balanced-binary-tree", "Balanced Binary Tree", Easy, "Trees"),
	p("same-tree", "Same Tree", Easy, "Trees"),
	p("subtree-of-another-tree", "Subtree of Another Tree", Easy, "Trees"),
	p("lowest-common-ancestor-of-a-binary-search-tree", "Lowest Common Ancestor of a Binary Search Tree", Medium, "Trees"),
	p("binary-tree-level-order-traversal", "Binary Tree Level Order Traversal", Medium, "Trees"),
	p("binary-tree-right-side-view", "Binary Tree Right Side View", Medium, "Trees"),
	p("count-good-nodes-in-binary-tree", "Count Good Nodes in Binary Tree", Medium, "Trees"),
	p("validate-binary-search-tree", "Validate Binary Search Tree", Medium, "Trees"),
	p("kth-smallest-element-in-a-bst", "Kth Smallest Element in a BST", Medium, "Trees"),
	p("construct-binary-tree-from-preorder-and-inorder-traversal", "Construct Binary Tree from Preorder and Inorder Traversal", Medium, "Trees"),
	p("binary-tree-maximum-path-sum", "Binary Tree Maximum Path Sum", Hard, "Trees"),
	p("serialize-and-deserialize-binary-tree", "Serialize and Deserialize Binary Tree", Hard, "Trees"),

	p("implement-trie-prefix-tree", "Implement Trie (Prefix Tree)", Medium, "Tries"),
	p("design-add-and-search-words-data-structure", "Design Add and Search Words Data Structure", Medium, "Tries"),
	p("word-search-ii", "Word Search II", Hard, "Tries"),

	p("kth-largest-element-in-a-stream", "Kth Largest Element in a Stream", Easy, "Heap / Priority Queue"),
	p("last-stone-weight", "Last Stone Weight", Easy, "Heap / Priority Queue"),
	p("k-closest-points-to-origin", "K Closest Points to Origin", Medium, "Heap / Priority Queue"),
	p("kth-largest-element-in-an-array", "Kth Largest Element in an Array", Medium, "Heap / Priority Queue"),
	p("task-scheduler", "Task Scheduler", Medium, "Heap / Priority Queue"),
	p("design-twitter", "Design Twitter", Medium, "Heap / Priority Queue"),
	p("find-median-from-data-stream", "Find Median from Data Stream", Hard, "Heap / Priority Queue"),

	p("subsets", "Subsets", Medium, "Backtracking"),
	p("combination-sum", "Combination Sum", Medium, "Backtracking"),
	p("permutations", "Permutations", Medium, "Backtracking"),
	p("subsets-ii", "Subsets II", Medium, "Backtracking"),
	p("combination-sum-ii", "Combination Sum II", Medium, "Backtracking"),
	p("word-search", "Word Search", Medium, "Backtracking"),
	p("palindrome-partitioning", "Palindrome Partitioning", Medium, "Backtracking"),
	p("letter-combinations-of-a-phone-number", "Letter Combinations of a Phone Number", Medium, "Backtracking"),
	p("n-queens", "N-Queens", Hard, "Backtracking"),

	p("number-of-islands", "Number of Islands", Medium, "Graphs"),
	p("clone-graph", "Clone Graph", Medium, "Graphs"),
	p("max-area-of-island", "Max Area of Island", Medium, "Graphs"),
	p("pacific-atlantic-water-flow", "Pacific Atlantic Water Flow", Medium, "Graphs"),
	p("surrounded-regions", "Surrounded Regions", Medium, "Graphs"),
	p("rotting-oranges", "Rotting Oranges", Medium, "Graphs"),
	p("walls-and-gates", "Walls and Gates", Medium, "Graphs"),
	p("course-schedule", "Course Schedule", Medium, "Graphs"),
	p("course-schedule-ii", "Course Schedule II", Medium, "Graphs"),
	p("redundant-connection", "Redundant Connection", Medium, "Graphs"),
	p("number-of-connected-components-in-an-undirected-graph", "Number of Connected Components in an Undirected Graph", Medium, "Graphs"),
	p("graph-valid-tree", "Graph Valid Tree", Medium, "Graphs"),
	p("word-ladder", "Word Ladder", Hard, "Graphs"),

	p("reconstruct-itinerary", "Reconstruct Itinerary", Hard, "Advanced Graphs"),
	p("min-cost-to-connect-all-points", "Min Cost to Connect All Points", Medium, "Advanced Graphs"),
	p("network-delay-time", "Network Delay Time", Medium, "Advanced Graphs"),
	p("swim-in-rising-water", "Swim in Rising Water", Hard, "Advanced Graphs"),
	p("alien-dictionary", "Alien Dictionary", Hard, "Advanced Graphs"),
	p("cheapest-flights-within-k-stops", "Cheapest Flights Within K Stops", Medium, "Advanced Graphs"),

	p("climbing-stairs", "Climbing Stairs", Easy, "1-D Dynamic Programming"),
	p("min-cost-climbing-stairs", "Min Cost Climbing Stairs", Easy, "1-D Dynamic Programming"),
	p("house-robber", "House Robber", Medium, "1-D Dynamic Programming"),
	p("house-robber-ii", "House Robber II", Medium, "1-D Dynamic Programming"),
	p("longest-palindromic-substring", "Longest Palindromic Substring", Medium, "1-D Dynamic Programming"),
	p("palindromic-substrings", "Palindromic Substrings", Medium, "1-D Dynamic Programming"),
	p("decode-ways", "Decode Ways", Medium, "1-D Dynamic Programming"),
	p("coin-change", "Coin Change", Medium, "1-D Dynamic Programming"),
	p("maximum-product-subarray", "Maximum Product Subarray", Medium, "1-D Dynamic Programming"),
	p("word-break", "Word Break", Medium, "1-D Dynamic Programming"),
	p("longest-increasing-subsequence", "Longest Increasing Subsequence", Medium, "1-D Dynamic Programming"),
	p("partition-equal-subset-sum", "Partition Equal Subset Sum", Medium, "1-D Dynamic Programming"),

	p("unique-paths", "Unique Paths", Medium, "2-D Dynamic Programming"),
	p("longest-common-subsequence", "Longest Common Subsequence", Medium, "2-D Dynamic Programming"),
	p("best-time-to-buy-and-sell-stock-with-cooldown", "Best Time to Buy and Sell Stock with Cooldown", Medium, "2-D Dynamic Programming"),
	p("coin-change-ii", "Coin Change II", Medium, "2-D Dynamic Programming"),
	p("target-sum", "Target Sum", Medium, "2-D Dynamic Programming"),
	p("interleaving-string", "Interleaving String", Medium, "2-D Dynamic Programming"),
	p("longest-increasing-path-in-a-matrix", "Longest Increasing Path in a Matrix", Hard, "2-D Dynamic Programming"),
	p("distinct-subsequences", "Distinct Subsequences", Hard, "2-D Dynamic Programming"),
	p("edit-distance", "Edit Distance", Medium, "2-D Dynamic Programming"),
	p("burst-balloons", "Burst Balloons", Hard, "2-D Dynamic Programming"),
	p("regular-expression-matching", "Regular Expression Matching", Hard, "2-D Dynamic Programming"),

	p("maximum-subarray", "Maximum Subarray", Medium, "Greedy"),
	p("jump-game", "Jump Game", Medium, "Greedy"),
	p("jump-game-ii", "Jump Game II", Medium, "Greedy"),
	p("gas-station", "Gas Station", Medium, "Greedy"),
	p("hand-of-straights", "Hand of Straights", Medium, "Greedy"),
	p("merge-triplets-to-form-target-triplet", "Merge Triplets to Form Target Triplet", Medium, "Greedy"),
	p("partition-labels", "Partition Labels", Medium, "Greedy"),
	p("valid-parenthesis-string", "Valid Parenthesis String", Medium, "Greedy"),

	p("insert-interval", "Insert Interval", Medium, "Intervals"),
	p("merge-intervals", "Merge Intervals", Medium, "Intervals"),
	p("non-overlapping-intervals", "Non-overlapping Intervals", Medium, "Intervals"),
	p("meeting-rooms", "Meeting Rooms", Easy, "Intervals"),
	p("meeting-rooms-ii", "Meeting Rooms II", Medium, "Intervals"),
	p("minimum-interval-to-include-each-query", "Minimum Interval to Include Each Query", Hard, "Intervals"),

	p("rotate-image", "Rotate Image", Medium, "Math & Geometry"),
	p("spiral-matrix", "Spiral Matrix", Medium, "Math & Geometry"),
	p("set-matrix-zeroes", "Set Matrix Zeroes", Medium, "Math & Geometry"),
	p("happy-number", "Happy Number", Easy, "Math & Geometry"),
	p("plus-one", "Plus One", Easy, "Math & Geometry"),
	p("powx-n", "Pow(x, n)", Medium, "Math & Geometry"),
	p("multiply-strings", "Multiply Strings", Medium, "Math & Geometry"),
	p("detect-squares", "Detect Squares", Medium, "Math & Geometry"),

	p("single-number", "Single Number", Easy, "Bit Manipulation"),
	p("number-of-1-bits", "Number of 1 Bits", Easy, "Bit Manipulation"),
	p("counting-bits", "Counting Bits", Easy, "Bit Manipulation"),
	p("reverse-bits", "Reverse Bits", Easy, "Bit Manipulation"),
	p("missing-number", "Missing Number", Easy, "Bit Manipulation"),
	p("sum-of-two-integers", "Sum of Two Integers", Medium, "Bit Manipulation"),
	p("reverse-integer", "Reverse Integer", Medium, "Bit Manipulation"),
}
